package core

import (
	"errors"
	"strings"

	"github.com/smartystreets/gcs"

	"github.com/haitrungle/cargo-binstall/contracts"
)

type CredentialParser struct {
	storage     contracts.FileReader
	environment contracts.Environment
}

func NewGoogleCredentialParser(storage contracts.FileReader, environment contracts.Environment) CredentialParser {
	return CredentialParser{storage: storage, environment: environment}
}

func (this CredentialParser) Parse() (gcs.Credentials, error) {
	credentialsPath, _ := this.environment.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath = strings.TrimSpace(credentialsPath); credentialsPath == "" {
		return gcs.Credentials{}, errors.New(
			"GOOGLE_APPLICATION_CREDENTIALS must point at a service account file for gs:// downloads")
	}
	data, err := this.storage.ReadFile(credentialsPath)
	if err != nil {
		return gcs.Credentials{}, err
	}
	return gcs.ParseCredentialsFromJSON(data)
}
