// exposes a Store interface that is passed to API handlers; the engine never
// sees this package, it only receives the records loaded through it.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// channel functions
	CreateChannel(name string, location *string, createdBy int) (model.Channel, error)
	GetChannelByID(id int) (model.Channel, error)
	ListChannels() ([]model.Channel, error)
	UpdateChannel(id int, name *string, location *string) error
	DeleteChannel(id int) error

	// creative functions
	CreateCreative(name, ctype, url string, defaultDuration, createdBy int) (model.Creative, error)
	GetCreativeByID(id int) (model.Creative, error)
	ListCreatives() ([]model.Creative, error)
	UpdateCreative(id int, name, url *string, defaultDuration *int) error
	DeleteCreative(id int) error

	// placement functions
	CreatePlacement(p model.Placement) (model.Placement, error)
	GetPlacementByID(id int) (model.Placement, error)
	ListPlacements() ([]model.Placement, error)
	UpdatePlacement(p model.Placement) error
	DeletePlacement(id int) error
	SetPlacementActive(id int, active bool) error
	LoadActivePlacements() ([]model.Placement, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
