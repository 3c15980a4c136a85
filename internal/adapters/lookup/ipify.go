package lookup

import (
	"context"
	"fmt"
	"iss-pass-service/internal/domain"
	"iss-pass-service/internal/platform/obs"
	"net/http"
	"strings"
)

type ipifyResponse struct {
	IP string `json:"ip"`
}

// IPifyResolver implements IPResolver against the ipify JSON API.
type IPifyResolver struct {
	httpGetter
}

func NewIPifyResolver(session *http.Client, baseURL string) (*IPifyResolver, error) {
	g, err := newHTTPGetter(session, baseURL)
	if err != nil {
		return nil, fmt.Errorf("new ipify resolver: %w", err)
	}
	return &IPifyResolver{httpGetter: g}, nil
}

func (r *IPifyResolver) ResolveIP(ctx context.Context) (_ domain.IPAddress, err error) {
	defer obs.Time(ctx, "ipify.ResolveIP")(&err)

	req, err := r.newRequest(ctx, r.baseURL+"/")
	if err != nil {
		return "", err
	}
	q := req.URL.Query()
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()

	resp, err := r.get(domain.StageIP, req)
	if err != nil {
		return "", err
	}

	if resp.Code != http.StatusOK {
		return "", domain.NewStatusError(domain.StageIP, resp.Code, "")
	}

	var decoded ipifyResponse
	if err := decodeJSON(domain.StageIP, resp.Body, &decoded); err != nil {
		return "", err
	}

	ip := strings.TrimSpace(decoded.IP)
	if ip == "" {
		return "", domain.MissingField(domain.StageIP, "ip")
	}

	return domain.IPAddress(ip), nil
}
