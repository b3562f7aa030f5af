package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/common"
	pb "github.com/dmitrijs2005/studyguide/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.StudyGuideServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if t := s.token(); t != "" {
		ctx = withAccessToken(ctx, t)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	// an expired session cannot be renewed; forget it so the next login starts clean
	if st, ok := status.FromError(err); ok && st.Code() == codes.Unauthenticated &&
		st.Message() == common.ErrTokenExpired.Error() {
		s.setToken("")
	}

	return err
}

func NewStudyGuideClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewStudyGuideServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, email, username, password string) error {

	req := &pb.RegisterRequest{Email: email, Username: username, Password: password}

	_, err := s.client.Register(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) Login(ctx context.Context, login, password string) (*models.Session, error) {

	req := &pb.LoginRequest{Login: login, Password: password}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.AccessToken)

	return &models.Session{Email: resp.GetEmail(), UserName: resp.GetUsername(), ExpiresAt: resp.GetExpiresAt().AsTime()}, nil

}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func fromPBSubject(in *pb.Subject) models.Subject {
	out := models.Subject{ID: in.GetId(), Name: in.GetName(), Semester: int(in.GetSemester())}
	for _, t := range in.GetTopics() {
		out.Topics = append(out.Topics, models.Topic{Number: int(t.GetNumber()), Title: t.GetTitle()})
	}
	return out
}

func (s *GRPCClient) ListSubjects(ctx context.Context) ([]models.Semester, error) {

	resp, err := s.client.ListSubjects(ctx, &pb.ListSubjectsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	semesters := make([]models.Semester, 0, len(resp.Semesters))
	for _, sem := range resp.Semesters {
		out := models.Semester{Number: int(sem.GetNumber())}
		for _, sub := range sem.GetSubjects() {
			out.Subjects = append(out.Subjects, fromPBSubject(sub))
		}
		semesters = append(semesters, out)
	}
	return semesters, nil
}

func (s *GRPCClient) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {

	resp, err := s.client.GetSubject(ctx, &pb.GetSubjectRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	sub := fromPBSubject(resp.GetSubject())
	return &sub, nil
}

func toPBTopics(in []int) []int32 {
	if len(in) == 0 {
		return nil
	}
	out := make([]int32, len(in))
	for i, n := range in {
		out[i] = int32(n)
	}
	return out
}

func (s *GRPCClient) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {

	resp, err := s.client.Generate(ctx, &pb.GenerateRequest{
		Kind:      string(req.Kind),
		SubjectId: req.SubjectID,
		Topics:    toPBTopics(req.Topics),
		Text:      req.Text,
	})
	if err != nil {
		return "", s.mapError(err)
	}

	switch resp.GetFailure() {
	case pb.GenerationFailure_GENERATION_FAILURE_UNSPECIFIED:
		return resp.Text, nil
	case pb.GenerationFailure_GENERATION_FAILURE_INPUT_TOO_LONG:
		return resp.Text, common.ErrInputTooLong
	default:
		return resp.Text, common.ErrGenerationFailed
	}
}

func (s *GRPCClient) ListHistory(ctx context.Context, limit int) ([]models.HistoryRecord, error) {

	resp, err := s.client.ListHistory(ctx, &pb.ListHistoryRequest{Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}

	records := make([]models.HistoryRecord, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, models.HistoryRecord{
			ID:        r.GetId(),
			Kind:      models.Kind(r.GetKind()),
			Prompt:    r.GetPrompt(),
			Response:  r.GetResponse(),
			CreatedAt: r.GetCreatedAt().AsTime(),
		})
	}
	return records, nil
}

func (s *GRPCClient) ExportHistory(ctx context.Context, id string) (string, error) {

	resp, err := s.client.ExportHistory(ctx, &pb.ExportHistoryRequest{Id: id})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

// knownErrors are the sentinels the server sends back as status messages.
var knownErrors = []error{
	common.ErrInvalidDomain,
	common.ErrDuplicateUser,
	common.ErrNotFound,
	common.ErrBadCredential,
	common.ErrValidation,
	common.ErrNoTopics,
	common.ErrEmptyInput,
	common.ErrInputTooLong,
	common.ErrGenerationFailed,
	common.ErrInvalidToken,
	common.ErrTokenExpired,
	common.ErrNotConfigured,
	common.ErrInternal,
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	for _, known := range knownErrors {
		if st.Message() == known.Error() {
			return known
		}
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
