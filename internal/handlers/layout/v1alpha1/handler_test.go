package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/handlers/layout/v1alpha1"
	"github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon"
	dungeonmock "github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon/mock"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils/builders"
)

type LayoutHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLayout *dungeonmock.MockService
	server     *grpc.Server
	conn       *grpc.ClientConn
	client     *v1alpha1.Client
	ctx        context.Context
}

func TestLayoutHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LayoutHandlerTestSuite))
}

func (s *LayoutHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLayout = dungeonmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LayoutService: s.mockLayout,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterLayoutServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis) // nolint:errcheck // stopped in teardown
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewClient(conn)
}

func (s *LayoutHandlerTestSuite) TearDownTest() {
	_ = s.conn.Close() // nolint:errcheck // safe to ignore in cleanup
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *LayoutHandlerTestSuite) TestNewHandler_RequiresService() {
	h, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Nil(h)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LayoutHandlerTestSuite) TestGenerateLayout_Success() {
	zones := builders.TwoZoneConfig()
	stored := testutils.CreateTestLayout(testutils.TestLayoutID)

	s.mockLayout.EXPECT().
		GenerateLayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dungeon.GenerateLayoutInput) (*dungeon.GenerateLayoutOutput, error) {
			s.Equal("test", input.Seed)
			s.Len(input.Zones, len(zones))
			s.Equal(zones[0].Name, input.Zones[0].Name)
			s.Equal(time.Hour, input.TTL)
			return &dungeon.GenerateLayoutOutput{Layout: stored}, nil
		})

	resp, err := s.client.GenerateLayout(s.ctx, &v1alpha1.GenerateLayoutRequest{
		Seed:       "test",
		Zones:      zones,
		TTLSeconds: 3600,
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Layout)
	s.Equal(testutils.TestLayoutID, resp.Layout.ID)
	s.Equal(stored.SeedHash, resp.Layout.SeedHash)
	s.Equal(len(stored.Rooms), len(resp.Layout.Rooms))
	s.Equal(stored.Doors, resp.Layout.Doors)
	s.True(stored.CreatedAt.Equal(resp.Layout.CreatedAt))
}

func (s *LayoutHandlerTestSuite) TestGenerateLayout_Validation() {
	_, err := s.client.GenerateLayout(s.ctx, &v1alpha1.GenerateLayoutRequest{TTLSeconds: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "zones")
	s.Contains(err.Error(), "ttl_seconds")
}

func (s *LayoutHandlerTestSuite) TestGetLayout_NotFoundKeepsMeta() {
	s.mockLayout.EXPECT().
		GetLayout(gomock.Any(), &dungeon.GetLayoutInput{LayoutID: "missing"}).
		Return(nil, errors.NotFound("layout not found").WithMeta("layout_id", "missing"))

	_, err := s.client.GetLayout(s.ctx, &v1alpha1.GetLayoutRequest{LayoutID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["layout_id"])
}

func (s *LayoutHandlerTestSuite) TestGetLayout_RequiresID() {
	_, err := s.client.GetLayout(s.ctx, &v1alpha1.GetLayoutRequest{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *LayoutHandlerTestSuite) TestRegenerateLayout() {
	s.mockLayout.EXPECT().
		RegenerateLayout(gomock.Any(), &dungeon.RegenerateLayoutInput{
			LayoutID: testutils.TestLayoutID,
			NewSeed:  "Q7x2",
		}).
		Return(&dungeon.RegenerateLayoutOutput{
			Layout:     testutils.CreateTestLayout("layout_2"),
			PreviousID: testutils.TestLayoutID,
		}, nil)

	resp, err := s.client.RegenerateLayout(s.ctx, &v1alpha1.RegenerateLayoutRequest{
		LayoutID: testutils.TestLayoutID,
		NewSeed:  "Q7x2",
	})
	s.Require().NoError(err)
	s.Equal("layout_2", resp.Layout.ID)
	s.Equal(testutils.TestLayoutID, resp.PreviousID)
}

func (s *LayoutHandlerTestSuite) TestRegenerateLayout_ConflictingSeeds() {
	_, err := s.client.RegenerateLayout(s.ctx, &v1alpha1.RegenerateLayoutRequest{
		LayoutID:  testutils.TestLayoutID,
		NewSeed:   "Q7x2",
		FreshSeed: true,
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "fresh_seed")
}

func (s *LayoutHandlerTestSuite) TestDeleteLayout() {
	s.mockLayout.EXPECT().
		DeleteLayout(gomock.Any(), &dungeon.DeleteLayoutInput{LayoutID: testutils.TestLayoutID}).
		Return(&dungeon.DeleteLayoutOutput{Deleted: true}, nil)

	resp, err := s.client.DeleteLayout(s.ctx, &v1alpha1.DeleteLayoutRequest{LayoutID: testutils.TestLayoutID})
	s.Require().NoError(err)
	s.True(resp.Deleted)
}

func (s *LayoutHandlerTestSuite) TestServiceErrorsKeepTheirCode() {
	s.mockLayout.EXPECT().
		DeleteLayout(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis unavailable"))

	_, err := s.client.DeleteLayout(s.ctx, &v1alpha1.DeleteLayoutRequest{LayoutID: "x"})
	s.True(errors.IsUnavailable(err))
	s.Equal("redis unavailable", errors.GetMessage(err))
}
