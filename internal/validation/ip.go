package validation

import (
	"net/netip"
	"strings"
)

type IPValidator struct{}

func NewIPValidator() *IPValidator {
	return &IPValidator{}
}

// ValidateHost rejects IP literals in private or reserved ranges. Hostnames
// pass through unresolved.
func (v *IPValidator) ValidateHost(host string) error {
	addr, ok := parseHostAddr(host)
	if !ok {
		return nil
	}
	return v.validateIP(addr)
}

func (v *IPValidator) validateIP(addr netip.Addr) error {
	if isLocal(addr) || addr.IsLinkLocalMulticast() || addr.IsMulticast() {
		return ErrPrivateIPNotAllowed
	}
	if isReservedRange(addr) {
		return ErrPrivateIPNotAllowed
	}
	return nil
}

// IsLocalAddress reports whether a client address is private, loopback,
// link-local, unspecified or the literal "localhost". Unparseable input is
// not local.
func IsLocalAddress(raw string) bool {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "localhost") {
		return true
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return false
	}
	return isLocal(addr.Unmap())
}

func isLocal(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified()
}

func parseHostAddr(host string) (netip.Addr, bool) {
	hostname := host
	if strings.HasPrefix(hostname, "[") {
		if end := strings.Index(hostname, "]"); end != -1 {
			hostname = hostname[1:end]
		}
	} else if idx := strings.LastIndex(hostname, ":"); idx != -1 && strings.Count(hostname, ":") == 1 {
		hostname = hostname[:idx]
	}

	addr, err := netip.ParseAddr(hostname)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func isReservedRange(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}

	ip4 := addr.As4()
	switch {
	case ip4[0] == 100 && ip4[1] >= 64 && ip4[1] <= 127: // CGNAT 100.64.0.0/10
		return true
	case ip4[0] == 192 && ip4[1] == 0 && ip4[2] == 0: // IETF 192.0.0.0/24
		return true
	case ip4[0] == 192 && ip4[1] == 0 && ip4[2] == 2: // TEST-NET-1
		return true
	case ip4[0] == 198 && ip4[1] == 51 && ip4[2] == 100: // TEST-NET-2
		return true
	case ip4[0] == 203 && ip4[1] == 0 && ip4[2] == 113: // TEST-NET-3
		return true
	}
	return false
}
