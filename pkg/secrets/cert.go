package secrets

import (
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"math/big"
	"time"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

const pemCertificate = "CERTIFICATE"

// DefaultValidityMonths applies when GenerateCertificate gets a non-positive validity.
const DefaultValidityMonths = 12

// oidUserID is the LDAP UID attribute (RFC 4519).
var oidUserID = asn1.ObjectIdentifier{0, 9, 2342, 19200300, 100, 1, 1}

// serialLimit bounds serial numbers to 128 bits.
var serialLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// CertificateInfo names the subject of a certificate. Only CommonName is required.
type CertificateInfo struct {
	CommonName         string
	Organization       string
	OrganizationalUnit string
	City               string
	State              string
	Country            string
	UserID             string
}

func (i CertificateInfo) name() pkix.Name {
	n := pkix.Name{
		CommonName:         i.CommonName,
		Organization:       nonEmpty(i.Organization),
		OrganizationalUnit: nonEmpty(i.OrganizationalUnit),
		Locality:           nonEmpty(i.City),
		Province:           nonEmpty(i.State),
		Country:            nonEmpty(i.Country),
	}
	if i.UserID != "" {
		n.ExtraNames = []pkix.AttributeTypeAndValue{{Type: oidUserID, Value: i.UserID}}
	}
	return n
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// GenerateCertificate issues a self-signed CA certificate for kp, valid from now
// for validityMonths, and returns it PEM-encoded.
func GenerateCertificate(info CertificateInfo, validityMonths int, kp KeyPair) ([]byte, error) {
	if info.CommonName == "" {
		return nil, apperr.NewInvalid(ErrMissingCommonName)
	}
	if !validPrivateKey(kp.Private) {
		return nil, apperr.NewInvalid(ErrInvalidPrivateKey)
	}
	if validityMonths <= 0 {
		validityMonths = DefaultValidityMonths
	}

	serial, err := rand.Int(rand.Reader, serialLimit)
	if err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrCertificateFailed, err))
	}

	now := time.Now().UTC()
	subject := info.name()
	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject,
		Issuer:                subject,
		NotBefore:             now,
		NotAfter:              now.AddDate(0, validityMonths, 0),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, kp.Private.Public(), kp.Private)
	if err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrCertificateFailed, err))
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemCertificate, Bytes: der}), nil
}

// ParseCertificate reads a certificate written by GenerateCertificate.
func ParseCertificate(data []byte) (*x509.Certificate, error) {
	der, err := decodePEM(data, pemCertificate)
	if err != nil {
		return nil, err
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrInvalidPEM, err))
	}
	return cert, nil
}
