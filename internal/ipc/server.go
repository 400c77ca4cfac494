package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"confmind/internal/logging"
	"confmind/internal/mind"
	"confmind/internal/pipeline"
)

// Server exposes the pipeline via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, p *pipeline.Pipeline, logger *slog.Logger) (*Server, error) {
	if p == nil {
		return nil, errors.New("ipc server requires pipeline")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{pipeline: p, logger: logger, ctx: ctx}
	if err := rpcServer.RegisterName("Mind", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve accepts RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
	ctx      context.Context
}

func (s *service) log() *slog.Logger {
	return s.logger.With(logging.String("component", "ipc"))
}

func speakerSummaries(speakers []*mind.Speaker) []SpeakerSummary {
	summaries := make([]SpeakerSummary, 0, len(speakers))
	for _, speaker := range speakers {
		summary := SpeakerSummary{
			Name:              speaker.Name,
			PassageCount:      len(speaker.Passages),
			SentenceStructure: speaker.Profile.SentenceStructure,
			Register:          speaker.Profile.VocabularyRegister,
		}
		for i, skill := range speaker.Skills {
			if i == 3 {
				break
			}
			summary.TopDomains = append(summary.TopDomains, skill.Domain)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// loadForRequest maps the pipeline's not-found sentinel into a response
// message; only unexpected failures surface as RPC errors.
func (s *service) loadForRequest(name string) (*mind.ConferenceMind, string, error) {
	m, err := s.pipeline.Load(s.ctx, name)
	if err != nil {
		if errors.Is(err, pipeline.ErrNotFound) {
			return nil, fmt.Sprintf("Conference %q not found. Use list to see available minds.", name), nil
		}
		return nil, "", err
	}
	return m, "", nil
}

func (s *service) Ingest(req IngestRequest, resp *IngestResponse) error {
	m, err := s.pipeline.Ingest(s.ctx, req.Transcript, req.Name, req.SourceLabel)
	if err != nil {
		if errors.Is(err, pipeline.ErrValidation) {
			resp.Message = err.Error()
			return nil
		}
		return err
	}
	resp.OK = true
	resp.Name = m.Name
	resp.Speakers = speakerSummaries(m.Speakers)
	resp.ThemeCount = len(m.Themes)
	resp.TensionCount = len(m.Tensions)
	s.log().Info("ingested via IPC", logging.String("name", m.Name))
	return nil
}

func (s *service) Ask(req AskRequest, resp *AskResponse) error {
	answer, err := s.pipeline.Ask(s.ctx, req.Question, req.Conference, req.Speaker)
	if err != nil {
		if errors.Is(err, pipeline.ErrNotFound) {
			resp.Message = fmt.Sprintf("Conference %q not found. Use list to see available minds.", req.Conference)
			return nil
		}
		return err
	}
	resp.OK = true
	resp.Answer = answer
	return nil
}

func (s *service) Speakers(req ConferenceRequest, resp *SpeakersResponse) error {
	m, message, err := s.loadForRequest(req.Conference)
	if err != nil {
		return err
	}
	if m == nil {
		resp.Message = message
		return nil
	}
	resp.OK = true
	resp.Speakers = speakerSummaries(m.Speakers)
	return nil
}

func (s *service) Themes(req ConferenceRequest, resp *ThemesResponse) error {
	m, message, err := s.loadForRequest(req.Conference)
	if err != nil {
		return err
	}
	if m == nil {
		resp.Message = message
		return nil
	}
	resp.OK = true
	for _, theme := range m.Themes {
		resp.Themes = append(resp.Themes, ThemeSummary{Term: theme.Term, Frequency: theme.Frequency})
	}
	return nil
}

func (s *service) Tensions(req ConferenceRequest, resp *TensionsResponse) error {
	m, message, err := s.loadForRequest(req.Conference)
	if err != nil {
		return err
	}
	if m == nil {
		resp.Message = message
		return nil
	}
	resp.OK = true
	for _, tension := range m.Tensions {
		resp.Tensions = append(resp.Tensions, TensionSummary{
			Speakers:        tension.Speakers,
			ContrastSignals: tension.ContrastSignals,
			Note:            tension.Note,
		})
	}
	return nil
}

func (s *service) List(_ ListRequest, resp *ListResponse) error {
	metas, err := s.pipeline.List()
	if err != nil {
		return err
	}
	for _, meta := range metas {
		resp.Minds = append(resp.Minds, MindSummary{
			Name:         meta.Name,
			Created:      meta.Created,
			SourceFile:   meta.SourceFile,
			SpeakerCount: meta.SpeakerCount,
			ThemeCount:   len(meta.Themes),
			TensionCount: len(meta.Tensions),
		})
	}
	return nil
}

func (s *service) Delete(req DeleteRequest, resp *DeleteResponse) error {
	if err := s.pipeline.Delete(req.Name); err != nil {
		if errors.Is(err, pipeline.ErrNotFound) {
			resp.Message = fmt.Sprintf("Conference %q not found.", req.Name)
			return nil
		}
		return err
	}
	resp.OK = true
	s.log().Info("deleted via IPC", logging.String("name", req.Name))
	return nil
}
