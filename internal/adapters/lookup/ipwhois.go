package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"iss-pass-service/internal/domain"
	"iss-pass-service/internal/platform/obs"
	"net/http"
	"net/url"
)

// ipwho.is answers most failures with HTTP 200 and "success": false.
type ipWhoisResponse struct {
	Success   *bool    `json:"success"`
	Message   string   `json:"message"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// IPWhoisResolver implements GeoResolver against ipwho.is.
//
// A payload with "success": false is treated as fatal and reported as an
// UpstreamError, even when the HTTP status is 200.
type IPWhoisResolver struct {
	httpGetter
}

func NewIPWhoisResolver(session *http.Client, baseURL string) (*IPWhoisResolver, error) {
	g, err := newHTTPGetter(session, baseURL)
	if err != nil {
		return nil, fmt.Errorf("new ipwhois resolver: %w", err)
	}
	return &IPWhoisResolver{httpGetter: g}, nil
}

func (r *IPWhoisResolver) ResolveCoordinates(
	ctx context.Context,
	ip domain.IPAddress,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ipwhois.ResolveCoordinates")(&err)

	if ip == "" {
		return domain.Coordinates{}, &domain.InputError{Stage: domain.StageGeo, Err: domain.ErrEmptyIP}
	}

	req, err := r.newRequest(ctx, r.baseURL+"/"+url.PathEscape(ip.String()))
	if err != nil {
		return domain.Coordinates{}, err
	}

	resp, err := r.get(domain.StageGeo, req)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if resp.Code != http.StatusOK {
		// The body is only consulted for a message; an unparseable body
		// still yields the status error.
		var body ipWhoisResponse
		_ = json.Unmarshal(resp.Body, &body)
		return domain.Coordinates{}, domain.NewStatusError(domain.StageGeo, resp.Code, body.Message)
	}

	var decoded ipWhoisResponse
	if err := decodeJSON(domain.StageGeo, resp.Body, &decoded); err != nil {
		return domain.Coordinates{}, err
	}

	if decoded.Success != nil && !*decoded.Success {
		return domain.Coordinates{}, &domain.UpstreamError{Stage: domain.StageGeo, Message: decoded.Message}
	}

	if decoded.Latitude == nil {
		return domain.Coordinates{}, domain.MissingField(domain.StageGeo, "latitude")
	}
	if decoded.Longitude == nil {
		return domain.Coordinates{}, domain.MissingField(domain.StageGeo, "longitude")
	}

	return domain.Coordinates{
		Lat: *decoded.Latitude,
		Lon: *decoded.Longitude,
	}, nil
}
