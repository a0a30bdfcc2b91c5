/*
Copyright © 2021 the climlab authors.
This file is part of climlab.

climlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

climlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with climlab.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command radcol computes radiative heating rates for a column
// scenario described by a TOML configuration file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AndrewWilliams3142/climlab/radiation"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

var configFile string

var root = &cobra.Command{
	Use:   "radcol",
	Short: "radcol computes radiative heating for an atmospheric column scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := radiation.DefaultConfig()
		if configFile != "" {
			f, err := os.Open(configFile)
			if err != nil {
				return err
			}
			defer f.Close()
			c, err = radiation.LoadConfig(f)
			if err != nil {
				return err
			}
		}

		gd, state, scheme, err := c.Build()
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"scheme": c.Scheme,
			"layers": gd.NLayers(),
			"cols":   gd.NCols(),
		}).Info("computing radiative heating")

		if err := scheme.RadiativeHeating(); err != nil {
			return err
		}

		heating := state.HeatingRate["Tatm"]
		for k := gd.NLayers() - 1; k >= 0; k-- {
			logger.Infof("layer %2d: heating %10.4f W/m2", k, heating.Get(k, 0))
		}
		d := scheme.Diagnostics()
		logger.WithFields(logrus.Fields{
			"absorbed_total":  fmt.Sprintf("%v", d.AbsorbedTotal),
			"flux_to_surface": fmt.Sprintf("%v", d.FluxToSurface),
			"flux_to_space":   fmt.Sprintf("%v", d.FluxToSpace),
		}).Info("boundary diagnostics")
		return nil
	},
}

func main() {
	root.Flags().StringVar(&configFile, "config", "", "path to the TOML scenario configuration")
	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
