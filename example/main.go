package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	prefixparse "github.com/MaxMahem/prefix-parse"
)

type DeviceConfig struct {
	BaseAddr uint32 `toml:"base_addr"`
	IRQMask  uint8  `toml:"irq_mask"`
	Mode     int    `toml:"mode"`
}

const sampleConfig = `
base_addr = "0xdeadbeef"
irq_mask = "0b10100101"
mode = "0o17"
`

func main() {
	// Prefixed numbers as command-line flags.
	fs := flag.NewFlagSet("example", flag.ExitOnError)
	mask := prefixparse.Flag[uint32](fs, "mask", 0xff, "bit mask, any radix notation")
	fs.Parse(os.Args[1:])
	fmt.Printf("mask: %#x\n", *mask)

	// Prefixed numbers inside a TOML config, via the mapstructure hook.
	raw := make(map[string]any)
	if err := toml.Unmarshal([]byte(sampleConfig), &raw); err != nil {
		fmt.Fprintf(os.Stderr, "parse config: %v\n", err)
		os.Exit(1)
	}

	var cfg DeviceConfig
	if err := prefixparse.Decode(raw, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "decode config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("base_addr: %#x irq_mask: %#b mode: %#o\n", cfg.BaseAddr, cfg.IRQMask, cfg.Mode)

	// Direct calls.
	n, err := prefixparse.Parse[uint32]("0x10")
	fmt.Println(n, err) // 16 <nil>

	base36 := prefixparse.Format{Prefix: "0z", Radix: 36}
	n, err = prefixparse.ParseWith[uint32](base36, "0z1jz")
	fmt.Println(n, err) // 2015 <nil>
}
