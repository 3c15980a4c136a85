package lookup

import (
	"context"
	"fmt"
	"iss-pass-service/internal/domain"
	"iss-pass-service/internal/platform/obs"
	"net/http"
)

// Response shape shared with the Open Notify iss-pass API.
// Message is "success" or "failure"; Reason is only set on failure.
type flyoverResponse struct {
	Message  string          `json:"message"`
	Reason   string          `json:"reason"`
	Response *[]*flyoverPass `json:"response"`
}

// Pointer fields tell an absent or null value apart from zero.
type flyoverPass struct {
	RiseTime *int64 `json:"risetime"`
	Duration *int64 `json:"duration"`
}

// FlyoverResolver implements PassScheduleResolver against the ISS flyover API.
type FlyoverResolver struct {
	httpGetter
}

func NewFlyoverResolver(session *http.Client, baseURL string) (*FlyoverResolver, error) {
	g, err := newHTTPGetter(session, baseURL)
	if err != nil {
		return nil, fmt.Errorf("new flyover resolver: %w", err)
	}
	return &FlyoverResolver{httpGetter: g}, nil
}

// ResolvePasses returns the upstream "response" array verbatim: no sorting,
// no filtering of passes that already happened.
func (r *FlyoverResolver) ResolvePasses(
	ctx context.Context,
	coords domain.Coordinates,
) (_ domain.PassSchedule, err error) {
	defer obs.Time(ctx, "flyover.ResolvePasses")(&err)

	if !coords.Valid() {
		return nil, &domain.InputError{Stage: domain.StagePasses, Err: domain.ErrInvalidCoordinates}
	}

	req, err := r.newRequest(ctx, r.baseURL+"/json/")
	if err != nil {
		return nil, err
	}
	lat, lon := coords.QueryValues()
	q := req.URL.Query()
	q.Set("lat", lat)
	q.Set("lon", lon)
	req.URL.RawQuery = q.Encode()

	resp, err := r.get(domain.StagePasses, req)
	if err != nil {
		return nil, err
	}

	if resp.Code != http.StatusOK {
		return nil, domain.NewStatusError(domain.StagePasses, resp.Code, "")
	}

	var decoded flyoverResponse
	if err := decodeJSON(domain.StagePasses, resp.Body, &decoded); err != nil {
		return nil, err
	}

	if decoded.Message == "failure" {
		return nil, &domain.UpstreamError{Stage: domain.StagePasses, Message: decoded.Reason}
	}

	if decoded.Response == nil {
		return nil, domain.MissingField(domain.StagePasses, "response")
	}

	passes := make(domain.PassSchedule, 0, len(*decoded.Response))
	for i, p := range *decoded.Response {
		if p == nil || p.RiseTime == nil {
			return nil, domain.MissingField(domain.StagePasses, fmt.Sprintf("response[%d].risetime", i))
		}
		if p.Duration == nil {
			return nil, domain.MissingField(domain.StagePasses, fmt.Sprintf("response[%d].duration", i))
		}
		passes = append(passes, domain.PassWindow{RiseTime: *p.RiseTime, Duration: *p.Duration})
	}

	return passes, nil
}
