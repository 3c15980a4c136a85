package domain

// Public network address of the caller, in the textual form returned by the
// IP lookup service. It is not parsed or validated beyond being non-empty.
type IPAddress string

func (ip IPAddress) String() string { return string(ip) }
