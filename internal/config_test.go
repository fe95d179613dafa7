package internal_test

import (
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pattarapon/hr-console/internal"
)

func TestInternal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Suite")
}

func validConfig() internal.Config {
	return internal.Config{
		Server: internal.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		API:     internal.APIConfig{BaseURL: "http://localhost:1337"},
		Session: internal.SessionConfig{TokenPath: "/tmp/hr-console-token"},
	}
}

var _ = Describe("Config", func() {
	It("should accept a complete configuration", func() {
		cfg := validConfig()
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should require an API base URL", func() {
		cfg := validConfig()
		cfg.API.BaseURL = ""
		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("base_url is required"))
	})

	It("should reject a base URL that is not http or https", func() {
		cfg := validConfig()
		cfg.API.BaseURL = "ftp://hr.internal"
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("should require a token path for the session store", func() {
		cfg := validConfig()
		cfg.Session.TokenPath = ""
		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("token_path is required"))
	})

	It("should reject a read timeout below the header timeout", func() {
		cfg := validConfig()
		cfg.Server.ReadTimeout = time.Second
		Expect(cfg.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("AppError", func() {
	It("should fall back to 502 for errors without an upstream status", func() {
		status, _ := internal.NewNetworkError("request failed", nil).ToHTTPResponse()
		Expect(status).To(Equal(http.StatusBadGateway))
	})

	It("should keep the upstream status when one exists", func() {
		status, _ := internal.NewUnauthorizedError("nope", http.StatusUnauthorized).ToHTTPResponse()
		Expect(status).To(Equal(http.StatusUnauthorized))
	})

	It("should never serialize the transport status or cause", func() {
		data, err := internal.NewServerError("boom", http.StatusInternalServerError).MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"type":"SERVER_ERROR"`))
		Expect(string(data)).NotTo(ContainSubstring("StatusCode"))
	})
})
