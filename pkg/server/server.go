package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/typehint/internal/utils"
	"github.com/bastiangx/typehint/pkg/config"
	"github.com/bastiangx/typehint/pkg/suggest"
	"github.com/bastiangx/typehint/pkg/workspace"
)

const (
	actionEstimate  = "estimate"
	actionHealth    = "health"
	actionGetConfig = "get_config"
	actionSetConfig = "set_config"
)

// Server handles the IPC for type hint estimation
type Server struct {
	completer suggest.ICompleter
	store     *config.Store
	ws        workspace.Workspace
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	mu        sync.Mutex
}

// NewServer creates a server using stdin/stdout for IPC. ws is used to read
// documents sent by URI only and may be nil.
func NewServer(completer suggest.ICompleter, store *config.Store, ws workspace.Workspace) *Server {
	return NewServerWithIO(completer, store, ws, os.Stdin, os.Stdout)
}

// NewServerWithIO is NewServer over arbitrary streams.
func NewServerWithIO(completer suggest.ICompleter, store *config.Store, ws workspace.Workspace, in io.Reader, out io.Writer) *Server {
	return &Server{
		completer: completer,
		store:     store,
		ws:        ws,
		decoder:   msgpack.NewDecoder(in),
		encoder:   msgpack.NewEncoder(out),
	}
}

// Start serves requests until the input ends or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decoding request: %w", err)
		}
		s.handleRequest(ctx, request)
	}
}

func (s *Server) handleRequest(ctx context.Context, request Request) {
	switch request.Action {
	case "", actionEstimate:
		s.handleEstimate(ctx, request)
	case actionHealth:
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	case actionGetConfig:
		s.sendConfig(request.ID, "ok")
	case actionSetConfig:
		s.handleSetConfig(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleEstimate(ctx context.Context, request Request) {
	cfg := s.store.Config()

	if request.Param == "" && request.Offset == nil {
		s.sendError(request.ID, "Missing 'param' field", 400)
		log.Debug("Param is empty in request")
		return
	}
	if request.Param != "" && !utils.IsValidInput(request.Param, cfg.Server.MaxParamLength) {
		s.sendError(request.ID, fmt.Sprintf("Invalid parameter name: %q", request.Param), 400)
		log.Debugf("Rejected param %q", request.Param)
		return
	}

	text := request.Text
	if text == "" && request.URI != "" {
		if s.ws == nil {
			s.sendError(request.ID, "Documents can only be sent inline", 400)
			return
		}
		doc, err := s.ws.Open(ctx, request.URI)
		if err != nil {
			log.Warnf("Reading %s: %v", request.URI, err)
			s.sendError(request.ID, fmt.Sprintf("Cannot read %s", request.URI), 404)
			return
		}
		text = doc.Text()
	}
	if len(text) > cfg.Server.MaxDocumentBytes {
		s.sendError(request.ID, fmt.Sprintf("Document exceeds %d bytes", cfg.Server.MaxDocumentBytes), 413)
		return
	}

	if request.Param == "" {
		param, ok := workspace.ParamAt(workspace.NewTextDocument(request.URI, text), *request.Offset)
		if !ok || !utils.IsValidInput(param, cfg.Server.MaxParamLength) {
			s.sendError(request.ID, fmt.Sprintf("No parameter at offset %d", *request.Offset), 400)
			return
		}
		request.Param = param
	}

	start := time.Now()
	suggestions := s.completer.Complete(ctx, suggest.Request{
		Param:  request.Param,
		URI:    request.URI,
		Text:   text,
		Prefix: request.Prefix,
		Limit:  request.Limit,
	})
	elapsed := time.Since(start)

	response := EstimateResponse{
		ID:          request.ID,
		Suggestions: toHintSuggestions(suggestions),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	s.sendResponse(response)
}

func (s *Server) handleSetConfig(request Request) {
	if request.SearchEnabled == nil && request.SearchLimit == nil {
		s.sendError(request.ID, "Nothing to update", 400)
		return
	}
	if err := s.store.Update(request.SearchEnabled, request.SearchLimit); err != nil {
		log.Warnf("Updating config: %v", err)
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	s.sendConfig(request.ID, "updated")
}

func (s *Server) sendConfig(id, status string) {
	ws := s.store.Snapshot()
	s.sendResponse(ConfigResponse{
		ID:            id,
		Status:        status,
		SearchEnabled: ws.SearchEnabled,
		SearchLimit:   ws.SearchLimit,
		Include:       ws.Include,
		ConfigPath:    s.store.Path(),
	})
}

// toHintSuggestions converts ranks to the wire width, saturating at MaxUint16.
func toHintSuggestions(suggestions []suggest.Suggestion) []HintSuggestion {
	result := make([]HintSuggestion, len(suggestions))
	for i, sg := range suggestions {
		rank, err := safecast.Conv[uint16](sg.Rank)
		if err != nil {
			rank = math.MaxUint16
		}
		result[i] = HintSuggestion{
			Hint:      sg.Hint,
			Rank:      rank,
			Estimated: sg.Kind == suggest.Estimated,
		}
	}
	return result
}

// sendResponse encodes response as one msgpack value.
func (s *Server) sendResponse(response any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
