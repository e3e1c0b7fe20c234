//go:build unix

package tcpconn

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// listenTCP4 creates a listening socket bound to addr. The socket is built by
// hand because net.ListenTCP always uses the system's maximum backlog.
func listenTCP4(addr *net.TCPAddr, backlog int) (*net.TCPListener, error) {
	ip4 := addr.IP.To4()
	if addr.IP == nil {
		ip4 = net.IPv4zero.To4()
	}
	if ip4 == nil {
		return nil, fmt.Errorf("%s is not an IPv4 address", addr.IP)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}
	unix.CloseOnExec(fd)

	sa := &unix.SockaddrInet4{Port: addr.Port}
	copy(sa.Addr[:], ip4)

	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}

	if err := unix.Listen(fd, backlog); err != nil {
		_ = unix.Close(fd)
		return nil, os.NewSyscallError("listen", err)
	}

	// FileListener dups the descriptor, so f is always closed here
	f := os.NewFile(uintptr(fd), fmt.Sprintf("tcp listener %s", addr))
	defer f.Close()

	l, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap socket: %w", err)
	}

	tl, ok := l.(*net.TCPListener)
	if !ok {
		_ = l.Close()
		return nil, fmt.Errorf("socket wrapped as unexpected listener type %T", l)
	}

	return tl, nil
}
