package main

import (
	"crypto/sha256"
	"fmt"
	"log"

	"github.com/haitrungle/cargo-binstall/contracts"
	"github.com/haitrungle/cargo-binstall/core"
	"github.com/haitrungle/cargo-binstall/remote"
	"github.com/haitrungle/cargo-binstall/shell"
)

func main() {
	log.SetFlags(0)
	config := parseConfig()

	client := remote.NewRetryDownloader(buildClient(config), config.MaxRetry)

	var verifiers []contracts.DataVerifier
	var checksum *core.HashVerifier
	if len(config.SHA256) > 0 {
		checksum = core.NewHashVerifier(sha256.New())
		verifiers = append(verifiers, checksum)
	}
	if config.ShowProgress {
		progress := core.NewProgressVerifier(func(written string, done bool) {
			if done {
				fmt.Printf("\nDownloaded %s.\n", written)
			} else {
				fmt.Printf("\033[2K\rDownloading... %s.", written)
			}
		})
		defer func() { _ = progress.Close() }()
		verifiers = append(verifiers, progress)
	}

	download := core.NewDownload(client, config.Address)
	if len(verifiers) > 0 {
		download = core.NewDownloadWithVerifier(client, config.Address, core.NewCompoundVerifier(verifiers...))
	}

	files, err := download.Extract(config.Format, config.Destination, shell.NewDiskFileSystem())
	if err != nil {
		log.Fatal(err)
	}
	if checksum != nil && !checksum.SumMatches(config.SHA256) {
		log.Fatalf("sha256 mismatch for %q", config.Address.String())
	}

	for _, path := range files.Paths() {
		log.Printf("extracted: %s", path)
	}
}

func buildClient(config Config) contracts.Downloader {
	if config.Address.Scheme == "gs" {
		parser := core.NewGoogleCredentialParser(shell.NewDiskFileSystem(), shell.NewEnvironment())
		credentials, err := parser.Parse()
		if err != nil {
			log.Fatal(err)
		}
		return remote.NewGoogleCloudStorageClient(remote.NewDefaultTransportClient(), credentials)
	}
	return remote.NewHTTPClient(remote.NewDefaultTransportClient())
}
