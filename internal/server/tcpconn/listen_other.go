//go:build !unix

package tcpconn

import "net"

// listenTCP4 falls back to the standard listener, which ignores backlog.
func listenTCP4(addr *net.TCPAddr, _ int) (*net.TCPListener, error) {
	return net.ListenTCP("tcp4", addr)
}
