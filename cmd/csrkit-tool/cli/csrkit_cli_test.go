package cli

import (
	"github.com/alecthomas/kong"
	"github.com/secinfra/csrkit/x/ctl"
)

func (s *testSuite) TestCsrInfo() {
	cmd := CsrInfoCmd{
		Csr: "testdata/test.csr",
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(
		"Subject: ",
		"CN=test.example.com",
		"Public Key Algorithm: RSA 2048",
		"DNS:a.example.com, DNS:b.example.com, email:ops@example.com, IP Address:10.0.0.1",
	)
}

func (s *testSuite) TestCsrInfoJSON() {
	jsonOut := true
	cmd := CsrInfoCmd{
		Csr:  "testdata/test.csr",
		JSON: &jsonOut,
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(
		`"key_type": "RSA"`,
		`"key_bits": 2048`,
		`"a.example.com"`,
	)
}

// --json goes through the *bool mapper registered on the parser
func (s *testSuite) TestCsrInfoJSONFlag() {
	var cl struct {
		CsrInfo CsrInfoCmd `cmd:""`
	}

	parser, err := kong.New(&cl, ctl.BoolPtrMapper)
	s.Require().NoError(err)

	_, err = parser.Parse([]string{"csr-info", "testdata/test.csr", "--json=true"})
	s.Require().NoError(err)
	s.Require().NotNil(cl.CsrInfo.JSON)
	s.True(*cl.CsrInfo.JSON)

	_, err = parser.Parse([]string{"csr-info", "testdata/test.csr", "--json=no"})
	s.Require().NoError(err)
	s.Require().NotNil(cl.CsrInfo.JSON)
	s.False(*cl.CsrInfo.JSON)
}

func (s *testSuite) TestCsrInfoNotFound() {
	cmd := CsrInfoCmd{
		Csr: "testdata/missing.csr",
	}
	err := cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "unable to load CSR file")
}

func (s *testSuite) TestCsrSans() {
	cmd := CsrSansCmd{
		Csr: "testdata/test.csr",
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(
		`"DNS"`,
		`"IP Address"`,
		`"email"`,
		`"10.0.0.1"`,
	)
}
