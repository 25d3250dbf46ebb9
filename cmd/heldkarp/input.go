package main

import (
	"errors"

	"github.com/katalvlaran/heldkarp/instance"
)

var (
	errNoInput   = errors.New("no cities: pass x,y points or --file")
	errBothInput = errors.New("pass either x,y points or --file, not both")
)

// loadInstance reads the instance from --file or from positional x,y points.
func loadInstance(file string, args []string) (*instance.Instance, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, errBothInput
	case file != "":
		return instance.Load(file)
	case len(args) > 0:
		pts, err := instance.ParsePoints(args)
		if err != nil {
			return nil, err
		}
		return instance.FromPoints(pts)
	default:
		return nil, errNoInput
	}
}
