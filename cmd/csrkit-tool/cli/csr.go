package cli

import (
	"github.com/effective-security/xlog"
	"github.com/pkg/errors"
	"github.com/secinfra/csrkit/certutil"
	"github.com/secinfra/csrkit/csr"
	"github.com/secinfra/csrkit/x/print"
)

// CsrInfoCmd specifies flags for Info command
type CsrInfoCmd struct {
	Csr  string `kong:"arg" required:"" help:"CSR file name"`
	JSON *bool  `help:"print as JSON"`
}

// Run the command
func (a *CsrInfoCmd) Run(ctx *Cli) error {
	raw, err := ctx.ReadFile(a.Csr)
	if err != nil {
		return errors.WithMessage(err, "unable to load CSR file")
	}

	parsed, err := csr.Parse(string(raw))
	if err != nil {
		logger.KV(xlog.DEBUG, "file", a.Csr, "err", err)
		return err
	}

	if a.JSON != nil && *a.JSON {
		res := struct {
			Subject csr.Subject `json:"subject"`
			KeyType string      `json:"key_type"`
			KeyBits int         `json:"key_bits"`
			SAN     csr.SANSet  `json:"san"`
		}{
			Subject: parsed.GetSubject(),
			KeyType: parsed.GetKeyTypeString(),
			KeyBits: parsed.GetKeyBits(),
			SAN:     parsed.GetSANs(),
		}
		ctx.WriteJSON(res)
		return nil
	}

	csrv, err := certutil.ParseRequestFromPEM(raw)
	if err != nil {
		return err
	}
	print.CertificateRequest(ctx.Writer(), csrv)

	return nil
}

// CsrSansCmd specifies flags for the SANs command
type CsrSansCmd struct {
	Csr string `kong:"arg" required:"" help:"CSR file name"`
}

// Run the command
func (a *CsrSansCmd) Run(ctx *Cli) error {
	raw, err := ctx.ReadFile(a.Csr)
	if err != nil {
		return errors.WithMessage(err, "unable to load CSR file")
	}

	sans, err := csr.ExtractSANs(string(raw))
	if err != nil {
		return err
	}
	ctx.WriteJSON(sans)

	return nil
}
