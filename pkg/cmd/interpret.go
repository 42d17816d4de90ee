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
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/semtools/go-boxer/pkg/boxer"
	"github.com/semtools/go-boxer/pkg/drt"
	"github.com/semtools/go-boxer/pkg/util"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [flags] sentence(s)",
	Short: "interpret one or more sentences as a single discourse.",
	Long: `Run the external analysis pipeline over the given sentences, treated as one
	 discourse, and print the resulting discourse representation structure (or
	 its first-order translation).`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) == 0 {
			fmt.Println("no sentences given")
			os.Exit(1)
		}
		//
		interpreter, err := boxer.New()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		interpreter.OccurrenceIndex = GetFlag(cmd, "occurrence")
		//
		var result util.Option[drt.Expr]
		//
		if id := GetString(cmd, "discourse-id"); id != "" {
			var results []util.Option[drt.Expr]
			//
			results, err = interpreter.BatchInterpret(context.Background(),
				[][]string{args}, []string{id})
			//
			if err == nil {
				result = results[0]
			}
		} else {
			result, err = interpreter.InterpretDiscourse(context.Background(), args)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		} else if result.IsEmpty() {
			fmt.Println("no parse")
			os.Exit(1)
		}
		//
		printResult(cmd, result.Unwrap())
	},
}

// printResult writes a parsed discourse, translated to first-order logic when
// requested.
func printResult(cmd *cobra.Command, expr drt.Expr) {
	if GetFlag(cmd, "fol") {
		fol, err := drt.Fol(expr)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Println(fol)
	} else {
		printExpr(expr)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(interpretCmd)
	interpretCmd.Flags().BoolP("fol", "f", false, "print a first-order translation")
	interpretCmd.Flags().Bool("occurrence", false, "occurrence-index predicate names")
	interpretCmd.Flags().StringP("discourse-id", "d", "", "identifier for this discourse")
}
