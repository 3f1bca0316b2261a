// File: services/agent/tools.go
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// requestTimeout bounds every outbound call to the booking API. On expiry
// control returns via the fallback path; there are no retries because the
// fallback already provides forward progress.
const requestTimeout = 10 * time.Second

// ToolSource tags a tool result as served live or degraded.
type ToolSource string

const (
	SourceLive     ToolSource = "live"
	SourceDegraded ToolSource = "degraded"
)

// ToolResult is a well-formed tool outcome. The conversational layer always
// receives one of these; transport failures never escape the resolver.
type ToolResult struct {
	Name    string
	Source  ToolSource
	Payload map[string]any
}

// ToolRunner is the contract between the conversational layer and the
// booking operations.
type ToolRunner interface {
	Run(ctx context.Context, name string, args map[string]string) (*ToolResult, error)
}

// DualPathResolver forwards each intent to the booking API and substitutes
// a locally computed equivalent on any transport failure.
type DualPathResolver struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

func NewDualPathResolver(baseURL string, logger *zap.Logger) *DualPathResolver {
	return &DualPathResolver{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: requestTimeout},
		Logger:  logger,
	}
}

// Run dispatches a named tool invocation.
func (r *DualPathResolver) Run(ctx context.Context, name string, args map[string]string) (*ToolResult, error) {
	switch name {
	case "check_availability":
		return r.checkAvailability(ctx, args), nil
	case "create_booking":
		return r.createBooking(ctx, args), nil
	case "get_room_types":
		return r.getRoomTypes(ctx, args), nil
	case "get_hotel_info":
		return r.getHotelInfo(ctx, args), nil
	case "get_booking":
		return r.getBooking(ctx, args), nil
	case "cancel_booking":
		return r.cancelBooking(ctx, args), nil
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

func (r *DualPathResolver) checkAvailability(ctx context.Context, args map[string]string) *ToolResult {
	checkIn := args["check_in"]
	checkOut := args["check_out"]
	query := url.Values{
		"check_in":  {checkIn},
		"check_out": {checkOut},
		"room_type": {argOr(args, "room_type", "any")},
		"guests":    {argOr(args, "guests", "2")},
	}

	payload, err := r.getJSON(ctx, "/rooms/availability", query)
	if err != nil {
		return r.degraded("check_availability", err, fallbackAvailability(checkIn, checkOut))
	}
	return live("check_availability", payload)
}

func (r *DualPathResolver) createBooking(ctx context.Context, args map[string]string) *ToolResult {
	required := []requiredField{
		{"name", args["guest_name"]},
		{"phone number", args["phone"]},
		{"email address", args["email"]},
	}
	if missing := firstMissing(required); missing != "" {
		return live("create_booking", map[string]any{
			"success": false,
			"message": fmt.Sprintf("Please collect the guest's %s first before creating a booking.", missing),
		})
	}

	body := map[string]string{
		"guest_name":       args["guest_name"],
		"check_in":         args["check_in"],
		"check_out":        args["check_out"],
		"room_type":        args["room_type"],
		"phone":            args["phone"],
		"email":            args["email"],
		"guests":           argOr(args, "guests", "2"),
		"special_requests": args["special_requests"],
	}

	payload, err := r.postJSON(ctx, "/bookings", body)
	if err != nil {
		return r.degraded("create_booking", err,
			fallbackCreateBooking(args["guest_name"], args["check_in"], args["check_out"], args["room_type"]))
	}
	return live("create_booking", payload)
}

func (r *DualPathResolver) getRoomTypes(ctx context.Context, args map[string]string) *ToolResult {
	filter := argOr(args, "filter_type", "all")
	payload, err := r.getJSON(ctx, "/rooms/types", url.Values{"filter_type": {filter}})
	if err != nil {
		return r.degraded("get_room_types", err, fallbackRoomTypeList(strings.ToLower(filter)))
	}
	return live("get_room_types", payload)
}

func (r *DualPathResolver) getHotelInfo(ctx context.Context, args map[string]string) *ToolResult {
	infoType := argOr(args, "info_type", "all")
	payload, err := r.getJSON(ctx, "/rooms/info", url.Values{"info_type": {infoType}})
	if err != nil {
		return r.degraded("get_hotel_info", err, fallbackHotelInfo())
	}
	return live("get_hotel_info", payload)
}

func (r *DualPathResolver) getBooking(ctx context.Context, args map[string]string) *ToolResult {
	confirmationNumber := args["confirmation_number"]
	guestName := args["guest_name"]

	// Enforced before any store call is attempted.
	if isPlaceholder(confirmationNumber) && isPlaceholder(guestName) {
		return live("get_booking", map[string]any{
			"found":   false,
			"message": "Please provide either a confirmation number or guest name.",
		})
	}

	var (
		payload map[string]any
		err     error
	)
	if !isPlaceholder(confirmationNumber) {
		payload, err = r.getJSON(ctx, "/bookings/"+url.PathEscape(confirmationNumber), nil)
	} else {
		payload, err = r.getJSON(ctx, "/bookings/search/by-name", url.Values{"guest_name": {guestName}})
	}

	if err != nil {
		if isStatusError(err) {
			// The service answered; the booking simply does not exist.
			return live("get_booking", map[string]any{"found": false, "message": "Booking not found."})
		}
		return r.degraded("get_booking", err, map[string]any{
			"found":   false,
			"message": "Could not retrieve booking. Please try again.",
		})
	}
	return live("get_booking", payload)
}

func (r *DualPathResolver) cancelBooking(ctx context.Context, args map[string]string) *ToolResult {
	confirmationNumber := args["confirmation_number"]
	if isPlaceholder(confirmationNumber) {
		return live("cancel_booking", map[string]any{
			"success": false,
			"message": "Please provide the confirmation number of the booking to cancel.",
		})
	}

	payload, err := r.deleteJSON(ctx, "/bookings/"+url.PathEscape(confirmationNumber))
	if err != nil {
		if isStatusError(err) {
			return live("cancel_booking", map[string]any{
				"success": false,
				"message": "Could not cancel booking. Please check the confirmation number.",
			})
		}
		return r.degraded("cancel_booking", err, fallbackCancelBooking(confirmationNumber))
	}
	return live("cancel_booking", payload)
}

func (r *DualPathResolver) degraded(tool string, cause error, payload map[string]any) *ToolResult {
	r.Logger.Warn("booking API unreachable, serving degraded response",
		zap.String("tool", tool), zap.Error(cause))
	return &ToolResult{Name: tool, Source: SourceDegraded, Payload: payload}
}

func live(tool string, payload map[string]any) *ToolResult {
	return &ToolResult{Name: tool, Source: SourceLive, Payload: payload}
}

func argOr(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok && !isPlaceholder(v) {
		return v
	}
	return fallback
}

// statusError marks responses where the API was reached but answered with a
// non-2xx status, as opposed to transport failures.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("booking API returned status %d", e.code)
}

func isStatusError(err error) bool {
	_, ok := err.(*statusError)
	return ok
}

func (r *DualPathResolver) getJSON(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	endpoint := r.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return r.do(req)
}

func (r *DualPathResolver) postJSON(ctx context.Context, path string, body any) (map[string]any, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req)
}

func (r *DualPathResolver) deleteJSON(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return r.do(req)
}

func (r *DualPathResolver) do(req *http.Request) (map[string]any, error) {
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{code: resp.StatusCode}
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode booking API response: %w", err)
	}
	return payload, nil
}
