// Copyright 2018 The OpenEBS Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command smdevinfo prints device and storage media information for a
// storage device or image file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/internal/smlog"
	"github.com/openebs/smdev/mediatypes"
	"github.com/openebs/smdev/smdev"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	verbose         bool
	showVersion     bool
	ignoreDataFiles bool
)

var rootCmd = &cobra.Command{
	Use:                   "smdevinfo [-hivV] SOURCE",
	Short:                 "Print device and storage media information",
	Args:                  cobra.MaximumNArgs(1),
	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	RunE:                  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&ignoreDataFiles, "ignore-data-files", "i", false, "list only audio tracks, omitting data tracks")

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		smlog.Logger().SetFormatter(&logrus.JSONFormatter{})
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Println("smdevinfo", version)
		return nil
	}
	if len(args) != 1 {
		return cmd.Usage()
	}
	smlog.SetVerbose(verbose)

	h := smdev.New()
	if err := h.Initialize(); err != nil {
		return err
	}
	defer h.Free()

	if err := h.SetFilename(args[0]); err != nil {
		return err
	}
	if err := h.Open(devicefile.ReadOnly); err != nil {
		return err
	}
	defer h.Close()

	printDeviceInformation(h)
	printStorageMediaInformation(h)
	printSessions(h)
	printTracks(h)
	return nil
}

func printDeviceInformation(h *smdev.Handle) {
	fmt.Println("Device information:")
	vendor, _ := h.InfoValue("vendor")
	model, _ := h.InfoValue("model")
	serial, _ := h.InfoValue("serial_number")
	busType, _ := h.BusType()
	fmt.Printf("\tVendor:\t\t%s\n", vendor)
	fmt.Printf("\tModel:\t\t%s\n", model)
	fmt.Printf("\tSerial number:\t%s\n", serial)
	fmt.Printf("\tBus type:\t%s\n", busType)
	fmt.Println()
}

func printStorageMediaInformation(h *smdev.Handle) {
	fmt.Println("Storage media information:")
	size, _ := h.MediaSize()
	sectorSize, _ := h.BytesPerSector()
	mediaType, _ := h.MediaType()
	fmt.Printf("\tMedia size:\t\t%d bytes\n", size)
	fmt.Printf("\tBytes per sector:\t%d\n", sectorSize)
	fmt.Printf("\tMedia type:\t\t%s\n", mediaType)
	fmt.Println()
}

func printSessions(h *smdev.Handle) {
	count, err := h.SessionCount()
	if err != nil || count == 0 {
		return
	}
	fmt.Println("Sessions:")
	for i := 0; i < count; i++ {
		s, err := h.Session(i)
		if err != nil {
			continue
		}
		fmt.Printf("\t%d:\tstart sector: %d\tnumber of sectors: %d\n", i+1, s.StartSector(), s.NumberOfSectors())
	}
	fmt.Println()
}

func printTracks(h *smdev.Handle) {
	count, err := h.TrackCount()
	if err != nil || count == 0 {
		return
	}
	fmt.Println("Tracks:")
	for i := 0; i < count; i++ {
		t, err := h.Track(i)
		if err != nil {
			continue
		}
		if ignoreDataFiles && t.Type != mediatypes.TrackTypeAudio {
			continue
		}
		bytesPerSector, _ := t.BytesPerSector()
		fmt.Printf("\t%d:\tstart sector: %d\tnumber of sectors: %d\tbytes per sector: %d\n",
			i+1, t.Range.StartSector(), t.Range.NumberOfSectors(), bytesPerSector)
	}
	fmt.Println()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smdevinfo:", err)
		os.Exit(1)
	}
}
