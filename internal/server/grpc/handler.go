package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/studyguide/internal/common"
	pb "github.com/dmitrijs2005/studyguide/internal/proto"
	"github.com/dmitrijs2005/studyguide/internal/server/auth"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/dmitrijs2005/studyguide/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.services.Credentials.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		s.logger.Warn(ctx, "registration failed", "error", err)
		return nil, statusError(err)
	}

	s.logger.Info(ctx, "Registered", "email", user.Email)
	return &pb.RegisterResponse{UserId: user.ID, Email: user.Email}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user, err := s.services.Credentials.Login(ctx, req.Login, req.Password)
	if err != nil {
		// unknown account and wrong password look the same to the caller
		if errors.Is(err, common.ErrNotFound) {
			err = common.ErrBadCredential
		}
		return nil, statusError(err)
	}

	expires := time.Now().Add(s.tokenTTL)
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, statusError(err)
	}

	return &pb.LoginResponse{
		AccessToken: token,
		Email:       user.Email,
		Username:    user.UserName,
		ExpiresAt:   timestamppb.New(expires),
	}, nil
}

func toPBSubject(m *models.Subject) *pb.Subject {
	out := &pb.Subject{Id: m.ID, Name: m.Name, Semester: int32(m.Semester)}
	for _, t := range m.Topics {
		out.Topics = append(out.Topics, &pb.Topic{Number: int32(t.Number), Title: t.Title})
	}
	return out
}

func (s *GRPCServer) ListSubjects(ctx context.Context, req *pb.ListSubjectsRequest) (*pb.ListSubjectsResponse, error) {

	semesters, err := s.services.Curriculum.ListBySemester(ctx)
	if err != nil {
		s.logger.Error(ctx, "list subjects", "error", err)
		return nil, statusError(err)
	}

	resp := &pb.ListSubjectsResponse{Semesters: make([]*pb.Semester, 0, len(semesters))}
	for _, sem := range semesters {
		out := &pb.Semester{Number: int32(sem.Number)}
		for i := range sem.Subjects {
			out.Subjects = append(out.Subjects, toPBSubject(&sem.Subjects[i]))
		}
		resp.Semesters = append(resp.Semesters, out)
	}
	return resp, nil
}

func (s *GRPCServer) GetSubject(ctx context.Context, req *pb.GetSubjectRequest) (*pb.GetSubjectResponse, error) {

	subject, err := s.services.Curriculum.Subject(ctx, req.Id)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.GetSubjectResponse{Subject: toPBSubject(subject)}, nil
}

func fromPBTopics(in []int32) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, n := range in {
		out[i] = int(n)
	}
	return out
}

func (s *GRPCServer) Generate(ctx context.Context, req *pb.GenerateRequest) (*pb.GenerateResponse, error) {

	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, statusError(common.ErrUnauthorized)
	}

	res, err := s.services.Generator.Generate(ctx, claims.Email, services.GenerateInput{
		Kind:      models.Kind(req.Kind),
		SubjectID: req.SubjectId,
		Topics:    fromPBTopics(req.Topics),
		Text:      req.Text,
	})
	if err != nil {
		if res == nil || res.Text == "" {
			return nil, statusError(err)
		}
		s.logger.Warn(ctx, "generation failed", "kind", req.Kind, "error", err)
		failure := pb.GenerationFailure_GENERATION_FAILURE_GENERATION_FAILED
		if errors.Is(err, common.ErrInputTooLong) {
			failure = pb.GenerationFailure_GENERATION_FAILURE_INPUT_TOO_LONG
		}
		return &pb.GenerateResponse{Text: res.Text, Failure: failure}, nil
	}

	resp := &pb.GenerateResponse{Text: res.Text}
	if res.Record != nil {
		resp.RecordId = res.Record.ID
	}
	return resp, nil
}

func (s *GRPCServer) ListHistory(ctx context.Context, req *pb.ListHistoryRequest) (*pb.ListHistoryResponse, error) {

	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, statusError(common.ErrUnauthorized)
	}

	records, err := s.services.History.List(ctx, claims.Email, int(req.Limit))
	if err != nil {
		return nil, statusError(err)
	}

	resp := &pb.ListHistoryResponse{Records: make([]*pb.HistoryRecord, 0, len(records))}
	for _, r := range records {
		resp.Records = append(resp.Records, &pb.HistoryRecord{
			Id:        r.ID,
			Kind:      string(r.Kind),
			Prompt:    r.Prompt,
			Response:  r.Response,
			CreatedAt: timestamppb.New(r.CreatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) ExportHistory(ctx context.Context, req *pb.ExportHistoryRequest) (*pb.ExportHistoryResponse, error) {

	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, statusError(common.ErrUnauthorized)
	}

	url, expires, err := s.services.Exporter.Export(ctx, claims.Email, req.Id)
	if err != nil {
		s.logger.Error(ctx, "export failed", "id", req.Id, "error", err)
		return nil, statusError(err)
	}
	return &pb.ExportHistoryResponse{Url: url, ExpiresAt: timestamppb.New(expires)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
