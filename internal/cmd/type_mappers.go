package cmd

import (
	"fmt"
	"net"
	"reflect"

	"github.com/alecthomas/kong"
)

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	kong.TypeMapper(reflect.TypeOf(Port(0)), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var portString string
		if err := ctx.Scan.PopValueInto("port", &portString); err != nil {
			return err
		}

		port, err := net.LookupPort("tcp", portString)
		if err != nil {
			return fmt.Errorf(`must be a port number or service name but got "%s"`, portString)
		}

		target.Set(reflect.ValueOf(Port(port)))

		return nil
	})),
}
