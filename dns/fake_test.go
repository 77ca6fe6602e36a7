package dns

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gravitl/dnsswitch/config"
)

const listing = `An asterisk (*) denotes that a network service is disabled.
Wi-Fi
Ethernet
*Thunderbolt Bridge
`

const scutilDNS = `DNS configuration

resolver #1
  nameserver[0] : 192.168.1.1
  nameserver[1] : 192.168.1.1
  if_index : 6 (en0)
  flags    : Request A records
  reach    : 0x00020002 (Reachable,Directly Reachable Address)

resolver #2
  domain   : local
  options  : mdns
  timeout  : 5
  order    : 300000

DNS configuration (for scoped queries)

resolver #1
  nameserver[0] : 192.168.1.1
  if_index : 6 (en0)
`

func unsetOutput(iface string) string {
	return fmt.Sprintf("There aren't any DNS Servers set on %s.\n", iface)
}

type response struct {
	out string
	err error
}

// fakeRunner answers commands from a fixed table and records every call
type fakeRunner struct {
	responses map[string]response
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: make(map[string]response)}
}

func (f *fakeRunner) on(command, out string) *fakeRunner {
	f.responses[command] = response{out: out}
	return f
}

func (f *fakeRunner) fail(command string, err error) *fakeRunner {
	f.responses[command] = response{err: err}
	return f
}

func (f *fakeRunner) Run(name string, args ...string) ([]byte, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, call)
	r, ok := f.responses[call]
	if !ok {
		return nil, fmt.Errorf("unexpected command %q", call)
	}
	return []byte(r.out), r.err
}

// count returns how many recorded calls start with prefix
func (f *fakeRunner) count(prefix string) int {
	n := 0
	for _, call := range f.calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

// statefulRunner behaves like networksetup on a host whose settings persist between calls
type statefulRunner struct {
	services []string
	servers  map[string][]string
}

func newStatefulRunner(services ...string) *statefulRunner {
	return &statefulRunner{services: services, servers: make(map[string][]string)}
}

func (s *statefulRunner) Run(name string, args ...string) ([]byte, error) {
	if name != "networksetup" || len(args) == 0 {
		return nil, fmt.Errorf("unexpected command %s %v", name, args)
	}
	switch args[0] {
	case "-listallnetworkservices":
		return []byte(strings.Join(s.services, "\n") + "\n"), nil
	case "-setdnsservers":
		servers := args[2:]
		if len(servers) == 1 && servers[0] == ClearSentinel {
			delete(s.servers, args[1])
		} else {
			s.servers[args[1]] = servers
		}
		return nil, nil
	case "-getdnsservers":
		servers, ok := s.servers[args[1]]
		if !ok {
			return []byte(unsetOutput(args[1])), nil
		}
		return []byte(strings.Join(servers, "\n") + "\n"), nil
	}
	return nil, fmt.Errorf("unexpected networksetup flag %s", args[0])
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Sudo = config.SudoNever
	return &cfg
}

func publicSetCommand(iface string) string {
	return "networksetup -setdnsservers " + iface + " " + strings.Join(PublicServers(), " ")
}

func publicGetOutput() string {
	return strings.Join(PublicServers(), "\n") + "\n"
}
