package client

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"

	"github.com/pkg/errors"
)

func getCertificates(sslCrtFile, sslKeyFile string) ([]tls.Certificate, error) {
	if sslCrtFile == "" || sslKeyFile == "" {
		return []tls.Certificate{}, nil
	}
	certificate, err := tls.LoadX509KeyPair(sslCrtFile, sslKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load client certificate")
	}
	return []tls.Certificate{certificate}, nil
}

func getCaCert(sslCaFile string) (*x509.CertPool, error) {
	if sslCaFile == "" {
		return x509.SystemCertPool()
	}
	bytes, err := os.ReadFile(sslCaFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read ca file")
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(bytes) {
		return nil, errors.Errorf("no certificates found in: %s", sslCaFile)
	}
	return caCertPool, nil
}

// getTlsConfig returns a transport, customized only when a ca or client
// certificate is configured.
func getTlsConfig(sslCaFile, sslCrtFile, sslKeyFile string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if sslCaFile == "" && (sslCrtFile == "" || sslKeyFile == "") {
		return transport, nil
	}
	caCertPool, err := getCaCert(sslCaFile)
	if err != nil {
		return nil, err
	}
	certificates, err := getCertificates(sslCrtFile, sslKeyFile)
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = &tls.Config{
		// TLS versions below 1.2 are considered insecure
		// see https://www.rfc-editor.org/rfc/rfc7525.txt for details
		MinVersion:   tls.VersionTLS12,
		RootCAs:      caCertPool,
		Certificates: certificates,
	}
	return transport, nil
}
