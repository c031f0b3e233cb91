package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route SRC DST",
		Short: "Print the shortest path between two nodes of the configured graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			r, err := svc.Route(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\t%s\n", strings.Join(r.Path, " -> "), r.Distance, r.Algorithm)
			return err
		},
	}
}

func newBFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bfs START",
		Short: "Print the breadth-first visit order from START",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			order, err := svc.Reachability(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))
			return err
		},
	}
}
