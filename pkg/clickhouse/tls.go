package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSSettings holds the files needed for mutual TLS. TLS is used when
// CertFile is set.
type TLSSettings struct {
	CertFile string
	KeyFile  string
	CAFile   string
}

// Enabled reports whether a client certificate was configured.
func (s TLSSettings) Enabled() bool {
	return s.CertFile != ""
}

// GetTLSConfig builds the TLS configuration for a mutual TLS connection.
func GetTLSConfig(opts ClientOptions) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load client certificate")
	}

	pem, err := os.ReadFile(opts.CAFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CA file")
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.Errorf("no certificates found in CA file: %s", opts.CAFile)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
