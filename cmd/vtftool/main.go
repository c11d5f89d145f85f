// vtftool is a CLI utility for inspecting Valve Texture Format files.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/vtfview/internal/viewer"
	"github.com/Faultbox/vtfview/pkg/vtf"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "resources", "res":
		cmdResources(args)
	case "flags":
		cmdFlags(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vtftool - Valve Texture Format utility

Usage:
  vtftool <command> [options]

Commands:
  info <file.vtf>                 Show header and image information
  resources <file.vtf>            List the resource dictionary (7.3+)
  flags <file.vtf>                List texture flags and their states
  flags <file.vtf> <name> <on|off> Set a flag and write the file back

Examples:
  vtftool info brickwall001a.vtf
  vtftool resources concretefloor.vtf
  vtftool flags brickwall001a.vtf sRGB on`)
}

func loadOrDie(path string) *vtf.File {
	f, err := vtf.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return f
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vtftool info <file.vtf>")
		os.Exit(1)
	}

	f := loadOrDie(args[0])

	rx, ry, rz := f.Reflectivity()
	fmt.Printf("File:         %s\n", args[0])
	fmt.Printf("Version:      %d.%d\n", f.MajorVersion(), f.MinorVersion())
	fmt.Printf("Size:         %.2f KiB\n", float64(f.Size())/1024)
	fmt.Printf("Dimensions:   %dx%dx%d\n", f.Width(), f.Height(), f.Depth())
	fmt.Printf("Format:       %s\n", f.Format())
	fmt.Printf("Frames:       %d (start %d)\n", f.FrameCount(), f.StartFrame())
	fmt.Printf("Faces:        %d\n", f.FaceCount())
	fmt.Printf("Mipmaps:      %d\n", f.MipmapCount())
	fmt.Printf("Reflectivity: %.3f %.3f %.3f\n", rx, ry, rz)
	fmt.Printf("Bumpmap scale: %.2f\n", f.BumpmapScale())

	if lw, lh := f.LowResDimensions(); lw > 0 {
		fmt.Printf("Thumbnail:    %dx%d %s\n", lw, lh, f.LowResFormat())
	}
}

func cmdResources(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vtftool resources <file.vtf>")
		os.Exit(1)
	}

	f := loadOrDie(args[0])
	if f.ResourceCount() == 0 {
		fmt.Printf("%s: no resource dictionary (version %d.%d)\n",
			args[0], f.MajorVersion(), f.MinorVersion())
		return
	}

	for i := 0; i < f.ResourceCount(); i++ {
		typ, err := f.ResourceType(i)
		if err != nil {
			continue
		}
		size := 0
		if data, err := f.ResourceData(typ); err == nil {
			size = len(data)
		}
		fmt.Printf("  0x%08X  %-32s %d bytes\n", typ, vtf.ResourceName(typ), size)
	}
}

func cmdFlags(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vtftool flags <file.vtf> [<name> <on|off>]")
		os.Exit(1)
	}

	f := loadOrDie(args[0])

	if len(args) >= 3 {
		setFlag(f, args[0], args[1], args[2])
		return
	}

	for _, desc := range viewer.FlagTable {
		state := " "
		if f.Flag(desc.Bit) {
			state = "x"
		}
		fmt.Printf("  [%s] 0x%08X  %s\n", state, uint32(desc.Bit), desc.Label)
	}
}

func setFlag(f *vtf.File, path, name, value string) {
	var on bool
	switch value {
	case "on", "1", "true":
		on = true
	case "off", "0", "false":
		on = false
	default:
		fmt.Fprintf(os.Stderr, "Invalid flag state: %s (want on|off)\n", value)
		os.Exit(1)
	}

	bit, ok := lookupFlag(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", name)
		os.Exit(1)
	}

	f.SetFlag(bit, on)
	if err := f.Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %s = %s\n", path, name, value)
}

// lookupFlag resolves a flag by label (case-insensitive, ignoring spaces)
// or by a hex bit value.
func lookupFlag(name string) (vtf.TextureFlags, bool) {
	normalize := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, " ", ""))
	}
	want := normalize(name)
	for _, desc := range viewer.FlagTable {
		label := strings.TrimSuffix(desc.Label, " (Deprecated)")
		if normalize(label) == want {
			return desc.Bit, true
		}
	}
	if v, err := strconv.ParseUint(strings.TrimPrefix(name, "0x"), 16, 32); err == nil {
		return vtf.TextureFlags(v), true
	}
	return 0, false
}
