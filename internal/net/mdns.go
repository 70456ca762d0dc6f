package net

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service hosts advertise.
const ServiceType = "_localpaint._tcp"

// Advertise announces a mirror on port under the given instance name. An
// empty name uses the host name.
func Advertise(name string, port int) (*mdns.Server, error) {
	if name == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("could not get hostname: %w", err)
		}
		name = host
	}

	service, err := mdns.NewMDNSService(name, ServiceType, "", "", port, nil, []string{"LocalPaint", "path=" + LivePath})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse queries the network for timeout and reports the viewer URL of
// every mirror found.
func Browse(timeout time.Duration, found func(url string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if url, ok := entryURL(e); ok {
				found(url)
			}
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("browse %s: %w", ServiceType, err)
	}
	return nil
}

func entryURL(e *mdns.ServiceEntry) (string, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return "", false
	}
	return ViewURL(e.AddrV4, e.Port), true
}

// ViewURL is the websocket address of a mirror.
func ViewURL(ip net.IP, port int) string {
	return fmt.Sprintf("ws://%s%s", net.JoinHostPort(ip.String(), fmt.Sprint(port)), LivePath)
}
