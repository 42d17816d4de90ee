// Copyright Semtools Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/semtools/go-boxer/pkg/boxer"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] term",
	Short: "parse a raw semantic term.",
	Long: `Parse a semantic term as printed by the external pipeline, without invoking
	 the pipeline itself.  Useful for inspecting saved output.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println("expected exactly one term")
			os.Exit(1)
		}
		//
		parser := boxer.Parser{
			OccurrenceIndex: GetFlag(cmd, "occurrence"),
			DiscourseID:     GetString(cmd, "discourse-id"),
		}
		//
		expr, err := parser.Parse(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		printResult(cmd, boxer.Simplify(expr))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("fol", "f", false, "print a first-order translation")
	parseCmd.Flags().Bool("occurrence", false, "occurrence-index predicate names")
	parseCmd.Flags().StringP("discourse-id", "d", "", "identifier for this discourse")
}
