package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mrled/suns/textval/internal/logger"
	"github.com/mrled/suns/textval/internal/model"
	"github.com/mrled/suns/textval/internal/repository"
	"github.com/mrled/suns/textval/internal/textcheck"
	"github.com/mrled/suns/textval/internal/usecase/check"
)

// Handler holds the dependencies for the httpapi Lambda handler
type Handler struct {
	service *check.Service
	log     *slog.Logger
}

// PalindromeRequest is the payload for /v1/palindrome
type PalindromeRequest struct {
	Text *string `json:"text"`
}

// ArithmeticRequest is the payload for /v1/add and /v1/divide
type ArithmeticRequest struct {
	A *NumberArg `json:"a"`
	B *NumberArg `json:"b"`
}

// XMLTextRequest is the payload for /v1/xmltext
type XMLTextRequest struct {
	XML     *string `json:"xml"`
	Element string  `json:"element"`
}

// CheckRequest is the payload for /v1/check. Args are positional, in the
// order the operation's own endpoint fields appear: text; a, b; xml, element.
type CheckRequest struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
}

// CheckResponse is the JSON body returned for a successful check
type CheckResponse struct {
	ID        string   `json:"id"`
	Operation string   `json:"operation"`
	Input     []string `json:"input"`
	Result    string   `json:"result"`
}

// NumberArg accepts a JSON number or a JSON string holding a number.
// The text is kept verbatim so integer operands stay integers.
type NumberArg string

// UnmarshalJSON implements json.Unmarshaler
func (n *NumberArg) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberArg(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or numeric string: %w", err)
	}
	*n = NumberArg(num.String())
	return nil
}

// NewHandler creates a new httpapi handler with dependencies configured from the environment.
// Check history goes to DYNAMODB_TABLE when it is set and is not kept otherwise.
func NewHandler() (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "httpapi")
	logger.SetDefault(log)

	ctx := context.Background()

	var repo model.CheckRepository
	if dynamoTable := os.Getenv("DYNAMODB_TABLE"); dynamoTable != "" {
		dynamoEndpoint := os.Getenv("DYNAMODB_ENDPOINT")
		if dynamoEndpoint == "" && os.Getenv("AWS_REGION") == "" {
			return nil, fmt.Errorf("AWS_REGION environment variable is required when DYNAMODB_ENDPOINT is not set")
		}

		var err error
		repo, err = repository.NewRepository(ctx, repository.RepositoryConfig{
			DynamoTable:    dynamoTable,
			DynamoEndpoint: dynamoEndpoint,
		})
		if err != nil {
			log.Error("Failed to initialize repository", slog.String("error", err.Error()))
			return nil, err
		}
		log.Info("Recording checks in DynamoDB",
			slog.String("table", dynamoTable),
			slog.String("endpoint", dynamoEndpoint))
	} else {
		log.Info("DYNAMODB_TABLE not set, checks will not be recorded")
	}

	return NewHandlerWithService(check.NewService(repo, logger.WithService(log, "check")), log), nil
}

// NewHandlerWithService creates a handler around an existing check service
func NewHandlerWithService(service *check.Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Handle processes API Gateway HTTP requests
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestLogger := logger.WithLambda(h.log,
		os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		request.RequestContext.RequestID)

	// API Gateway v2 puts the path in RequestContext.HTTP.Path
	path := request.RequestContext.HTTP.Path
	if path == "" {
		path = request.RawPath
	}
	path = strings.TrimSuffix(strings.TrimPrefix(path, "/api"), "/")
	method := request.RequestContext.HTTP.Method

	requestLogger.Info("Incoming request",
		slog.String("method", method),
		slog.String("path", path))

	var handle func(context.Context, string) (*model.CheckRecord, error)
	switch path {
	case "/v1/palindrome":
		handle = h.palindrome
	case "/v1/add":
		handle = h.add
	case "/v1/divide":
		handle = h.divide
	case "/v1/xmltext":
		handle = h.xmlText
	case "/v1/check":
		handle = h.check
	default:
		requestLogger.Warn("Path not matched", slog.String("path", path))
		return errorResponseV2(http.StatusNotFound, fmt.Sprintf("Unknown endpoint: %s", path))
	}

	if method != http.MethodPost {
		requestLogger.Warn("Method validation failed", slog.String("received_method", method))
		return errorResponseV2(http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed. Only POST is supported for this endpoint (received: %s)", method))
	}

	record, err := handle(ctx, request.Body)
	if err != nil {
		if errors.Is(err, textcheck.ErrInvalidArgument) {
			return errorResponseV2(http.StatusBadRequest, err.Error())
		}
		requestLogger.Error("Check failed", slog.String("error", err.Error()))
		return errorResponseV2(http.StatusInternalServerError, fmt.Sprintf("check failed: %v", err))
	}

	return jsonResponseV2(http.StatusOK, CheckResponse{
		ID:        record.ID,
		Operation: string(record.Operation),
		Input:     record.Input,
		Result:    record.Result,
	})
}

func (h *Handler) palindrome(ctx context.Context, body string) (*model.CheckRecord, error) {
	var req PalindromeRequest
	if err := decodeBody(body, &req); err != nil {
		return nil, err
	}
	if req.Text == nil {
		return nil, fmt.Errorf("%w: text field is required", textcheck.ErrInvalidArgument)
	}
	return h.service.Palindrome(ctx, *req.Text)
}

func (h *Handler) add(ctx context.Context, body string) (*model.CheckRecord, error) {
	a, b, err := decodeOperands(body)
	if err != nil {
		return nil, err
	}
	return h.service.Add(ctx, a, b)
}

func (h *Handler) divide(ctx context.Context, body string) (*model.CheckRecord, error) {
	a, b, err := decodeOperands(body)
	if err != nil {
		return nil, err
	}
	return h.service.Divide(ctx, a, b)
}

func (h *Handler) xmlText(ctx context.Context, body string) (*model.CheckRecord, error) {
	var req XMLTextRequest
	if err := decodeBody(body, &req); err != nil {
		return nil, err
	}
	if req.XML == nil {
		return nil, fmt.Errorf("%w: xml field is required", textcheck.ErrInvalidArgument)
	}
	if req.Element == "" {
		return nil, fmt.Errorf("%w: element field is required", textcheck.ErrInvalidArgument)
	}
	return h.service.XMLText(ctx, *req.XML, req.Element)
}

func (h *Handler) check(ctx context.Context, body string) (*model.CheckRecord, error) {
	var req CheckRequest
	if err := decodeBody(body, &req); err != nil {
		return nil, err
	}
	if req.Operation == "" {
		return nil, fmt.Errorf("%w: operation field is required", textcheck.ErrInvalidArgument)
	}
	return h.service.Run(ctx, model.Operation(req.Operation), req.Args)
}

func decodeOperands(body string) (string, string, error) {
	var req ArithmeticRequest
	if err := decodeBody(body, &req); err != nil {
		return "", "", err
	}
	if req.A == nil || req.B == nil {
		return "", "", fmt.Errorf("%w: a and b fields are required", textcheck.ErrInvalidArgument)
	}
	return string(*req.A), string(*req.B), nil
}

func decodeBody(body string, v any) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", textcheck.ErrInvalidArgument, err)
	}
	return nil
}

func jsonResponseV2(statusCode int, v any) (events.APIGatewayV2HTTPResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResponseV2(http.StatusInternalServerError, "failed to generate response")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

// errorResponseV2 creates a standardized error response for API Gateway v2
func errorResponseV2(statusCode int, message string) (events.APIGatewayV2HTTPResponse, error) {
	body, _ := json.Marshal(map[string]string{
		"error": message,
	})

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}
