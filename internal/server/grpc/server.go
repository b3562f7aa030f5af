package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/studyguide/internal/logging"
	pb "github.com/dmitrijs2005/studyguide/internal/proto"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/dmitrijs2005/studyguide/internal/server/services"
	"google.golang.org/grpc"
)

// Credentials is implemented by *services.CredentialService.
type Credentials interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (*models.User, error)
}

// Curriculum is implemented by *services.CurriculumService.
type Curriculum interface {
	ListBySemester(ctx context.Context) ([]models.Semester, error)
	Subject(ctx context.Context, id int64) (*models.Subject, error)
}

// Generator is implemented by *services.GenerationService.
type Generator interface {
	Generate(ctx context.Context, user string, in services.GenerateInput) (*services.GenerateResult, error)
}

// History is implemented by *services.HistoryService.
type History interface {
	List(ctx context.Context, user string, limit int) ([]*models.HistoryRecord, error)
}

// Exporter is implemented by *services.ExportService.
type Exporter interface {
	Export(ctx context.Context, user, id string) (string, time.Time, error)
}

// Services groups what the server delegates to.
type Services struct {
	Credentials Credentials
	Curriculum  Curriculum
	Generator   Generator
	History     History
	Exporter    Exporter
}

type GRPCServer struct {
	pb.UnimplementedStudyGuideServiceServer
	address   string
	services  Services
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewGRPCServer(a string, l logging.Logger, s Services, secretKey string, tokenTTL time.Duration) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		services:  s,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterStudyGuideServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
