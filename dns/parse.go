package dns

import (
	"bufio"
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// disabledHeader starts the legend networksetup prints above the service list
	disabledHeader = "An asterisk"
	// disabledMarker flags a disabled network service
	disabledMarker = "(*)"
	// unsetPhrase is printed by networksetup -getdnsservers when no manual DNS is configured
	unsetPhrase = "There aren't any DNS Servers set on"
	// nameserverPrefix starts every nameserver entry in scutil --dns
	nameserverPrefix = "nameserver["
)

var errUndecodable = errors.New("output is not valid UTF-8 text")

func decode(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", errUndecodable
	}
	return string(out), nil
}

func lines(text string) []string {
	var out []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	return out
}

// ParseServices returns the active services of a networksetup -listallnetworkservices
// listing in the order the host prints them.
func ParseServices(text string) []string {
	var services []string
	for _, line := range lines(text) {
		line = strings.TrimSpace(line)
		if line == "" ||
			strings.Contains(line, disabledHeader) ||
			strings.Contains(line, disabledMarker) ||
			strings.HasPrefix(line, "*") {
			continue
		}
		services = append(services, line)
	}
	return services
}

// ParseManualServers parses networksetup -getdnsservers output. unset is true when
// the host reports that no DNS servers are configured for the service.
func ParseManualServers(text string) (servers []string, unset bool) {
	for _, line := range lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, unsetPhrase) {
			unset = true
			continue
		}
		servers = append(servers, line)
	}
	if unset {
		return nil, true
	}
	return servers, false
}

// ParseResolverState extracts nameserver addresses from scutil --dns output.
// Duplicates are dropped, the first occurrence keeps its position.
func ParseResolverState(text string) []string {
	var servers []string
	seen := make(map[string]struct{})
	for _, line := range lines(text) {
		if !strings.HasPrefix(strings.TrimSpace(line), nameserverPrefix) {
			continue
		}
		_, addr, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		servers = append(servers, addr)
	}
	return servers
}
