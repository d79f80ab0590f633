package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/postgrestest"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgrestest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

var at = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(trackingID string) *parcel.Parcel {
	delivery := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		trackingID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		parcel.Details{
			Type:            "Fragile",
			Weight:          3.5,
			PickupAddress:   "12 Pickup Rd",
			DeliveryAddress: "34 Drop Ave",
			DeliveryDate:    &delivery,
		},
		parcel.Charge{Fee: 230, CouponCode: "Save50", DiscountAmount: 50},
		at,
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	p := suite.newParcel("TRK-20260501-AAAAAA")

	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.TrackingID(), got.TrackingID())
	suite.True(got.Sender().IsEqual(p.Sender()))
	suite.True(got.Receiver().IsEqual(p.Receiver()))
	suite.Equal(p.Details().Type, got.Details().Type)
	suite.InDelta(3.5, got.Details().Weight, 1e-9)
	suite.Require().NotNil(got.Details().DeliveryDate)
	suite.True(p.Details().DeliveryDate.Equal(*got.Details().DeliveryDate))
	suite.Equal(p.Charge(), got.Charge())
	suite.Equal(parcel.Requested, got.Status())
	suite.False(got.IsBlocked())
	suite.Equal(0, got.Version())
	suite.Require().Len(got.Events(), 1)
	suite.Equal(parcel.NoteRequested, got.Events()[0].Note())
	suite.True(got.Events()[0].Timestamp().Equal(at))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingID() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel("TRK-20260501-DUPDUP")))

	err := suite.repository.Add(ctx, suite.newParcel("TRK-20260501-DUPDUP"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_AppendsEventsAndBumpsVersion() {
	ctx := context.Background()
	p := suite.newParcel("TRK-20260501-BBBBBB")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	admin := kernel.NewUUID()
	suite.Require().NoError(p.UpdateStatus(parcel.Approved, admin, at.Add(time.Hour), "Depot", "checked"))
	suite.Require().NoError(suite.repository.Update(ctx, p))
	suite.Equal(1, p.Version())

	suite.Require().NoError(p.Block(admin, at.Add(2*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Blocked, got.Status())
	suite.True(got.IsBlocked())
	suite.Equal(2, got.Version())
	suite.Require().Len(got.Events(), 3)
	suite.Equal(parcel.Approved, got.Events()[1].Status())
	suite.Equal("Depot", got.Events()[1].Location())
	suite.Equal(parcel.NoteAdminBlocked, got.Events()[2].Note())

	var stored int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.TrackingEventDTO{}).
		Where("parcel_id = ?", p.ID().Bytes()).Count(&stored).Error)
	suite.Equal(int64(3), stored)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_StaleVersionIsRejected() {
	ctx := context.Background()
	p := suite.newParcel("TRK-20260501-CCCCCC")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	first, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Cancel(first.Sender(), at.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.UpdateStatus(parcel.Approved, kernel.NewUUID(), at.Add(time.Minute), "", ""))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Canceled, got.Status())
	suite.Len(got.Events(), 2)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_MissingParcel() {
	p := suite.newParcel("TRK-20260501-DDDDDD")

	err := suite.repository.Update(context.Background(), p)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
