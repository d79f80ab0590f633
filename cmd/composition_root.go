package cmd

import (
	"time"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/password"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/token"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	now        commands.Clock
	fees       services.FeeCalculator
	trackingID services.TrackingIDGenerator
	tokens     *token.JWTService
	hasher     *password.BcryptHasher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return CompositionRoot{}, err
	}
	tokens, err := token.NewJWTService(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}
	hasher, err := password.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return CompositionRoot{}, err
	}

	policy := services.DefaultFeePolicy()
	policy.RatePerUnit = config.FeeRatePerUnit

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		now:        time.Now,
		fees:       services.NewFeeCalculator(policy),
		trackingID: services.NewTrackingIDGenerator(),
		tokens:     tokens,
		hasher:     hasher,
	}, nil
}

func (c *CompositionRoot) Tokens() *token.JWTService {
	return c.tokens
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoW() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.uow(), c.fees, c.trackingID, c.now)
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	return commands.NewCancelParcelCommandHandler(c.parcelUoW(), c.now)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.parcelUoW(), c.now)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.parcelUoW(), c.now)
}

func (c *CompositionRoot) CreateBlockParcelCommandHandler() commands.BlockParcelCommandHandler {
	return commands.NewBlockParcelCommandHandler(c.parcelUoW(), c.now)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoW(), c.hasher, c.now)
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	return commands.NewEnsureAdminCommandHandler(c.userUoW(), c.hasher, c.now)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.userUoW(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateSetUserBlockedCommandHandler() commands.SetUserBlockedCommandHandler {
	return commands.NewSetUserBlockedCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateGetParcelStatsQueryHandler() queries.GetParcelStatsQueryHandler {
	return queries.NewGetParcelStatsQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateParcel:       c.CreateCreateParcelCommandHandler(),
		CancelParcel:       c.CreateCancelParcelCommandHandler(),
		ConfirmDelivery:    c.CreateConfirmDeliveryCommandHandler(),
		UpdateParcelStatus: c.CreateUpdateParcelStatusCommandHandler(),
		BlockParcel:        c.CreateBlockParcelCommandHandler(),
		RegisterUser:       c.CreateRegisterUserCommandHandler(),
		LoginUser:          c.CreateLoginUserCommandHandler(),
		SetUserBlocked:     c.CreateSetUserBlockedCommandHandler(),

		GetParcel:           queries.NewGetParcelQueryHandler(c.gormDB),
		GetParcelStatusLog:  queries.NewGetParcelStatusLogQueryHandler(c.gormDB),
		TrackParcel:         queries.NewTrackParcelQueryHandler(c.gormDB),
		ListSenderParcels:   queries.NewListSenderParcelsQueryHandler(c.gormDB),
		ListReceiverParcels: queries.NewListReceiverParcelsQueryHandler(c.gormDB),
		ListAllParcels:      queries.NewListAllParcelsQueryHandler(c.gormDB),
		ListUsers:           queries.NewListUsersQueryHandler(c.gormDB),
		GetUser:             queries.NewGetUserQueryHandler(c.gormDB),
	}
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
