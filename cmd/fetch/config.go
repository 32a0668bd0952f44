package main

import (
	"encoding/hex"
	"flag"
	"log"
	"net/url"

	"github.com/haitrungle/cargo-binstall/contracts"
)

type Config struct {
	Address      url.URL
	Format       contracts.Format
	Destination  string
	SHA256       []byte
	MaxRetry     int
	ShowProgress bool
}

func parseConfig() (config Config) {
	var rawURL, rawFormat, rawSHA256 string
	flag.StringVar(&rawURL, "url", "", "Address of the package archive or raw binary to fetch. (required)")
	flag.StringVar(&rawFormat, "format", "tgz", "Declared package format: tar|tbz2|tgz|txz|tzstd|zip|bin.")
	flag.StringVar(&config.Destination, "dest", ".", "Destination directory (or file path for -format bin).")
	flag.StringVar(&rawSHA256, "sha256", "", "When set, hex-encoded sha256 the downloaded bytes must match.")
	flag.IntVar(&config.MaxRetry, "max-retry", 3, "How many times to retry a failed request.")
	flag.BoolVar(&config.ShowProgress, "progress", false, "When set, report download progress.")
	flag.Parse()

	if rawURL == "" {
		log.Fatal("the -url flag is required")
	}
	address, err := url.Parse(rawURL)
	if err != nil {
		log.Fatal(err)
	}
	config.Address = *address

	config.Format, err = contracts.ParseFormat(rawFormat)
	if err != nil {
		log.Fatal(err)
	}

	if rawSHA256 != "" {
		config.SHA256, err = hex.DecodeString(rawSHA256)
		if err != nil {
			log.Fatal(err)
		}
	}
	return config
}
