package session_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pattarapon/hr-console/internal"
	"github.com/pattarapon/hr-console/internal/session"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Session Suite")
}

func signToken(claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	Expect(err).NotTo(HaveOccurred())
	return token
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(GinkgoWriter, nil))
}

var _ = Describe("DecodeToken", func() {
	It("should extract username, role, and expiry without verifying", func() {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token := signToken(jwt.MapClaims{
			"username": "somsak",
			"role":     "HR",
			"exp":      exp.Unix(),
		})

		id, err := session.DecodeToken(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.Username).To(Equal("somsak"))
		Expect(id.Role).To(Equal("HR"))
		Expect(id.ExpiresAt.Unix()).To(Equal(exp.Unix()))
	})

	It("should fall back to the subject claim for the username", func() {
		token := signToken(jwt.MapClaims{"sub": "somsak", "role": "ADMIN"})

		id, err := session.DecodeToken(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(id.Username).To(Equal("somsak"))
	})

	It("should reject a malformed token with a decode error", func() {
		_, err := session.DecodeToken("not-a-jwt")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeDecode))
	})
})

var _ = Describe("Identity expiry", func() {
	It("should treat a past expiry as expired", func() {
		id := session.Identity{ExpiresAt: time.Now().Add(-time.Minute)}
		Expect(id.Expired(time.Now())).To(BeTrue())
	})

	It("should never expire a token without an exp claim", func() {
		id := session.Identity{}
		Expect(id.Expired(time.Now())).To(BeFalse())
	})
})

var _ = Describe("Manager", func() {
	var manager *session.Manager

	BeforeEach(func() {
		manager = session.NewManager(session.NewMemoryTokenStore(), testLogger())
	})

	It("should round-trip the token through the store", func() {
		Expect(manager.SetToken("abc")).To(Succeed())
		token, ok := manager.Token()
		Expect(ok).To(BeTrue())
		Expect(token).To(Equal("abc"))

		Expect(manager.ClearSession()).To(Succeed())
		_, ok = manager.Token()
		Expect(ok).To(BeFalse())
	})

	It("should notify subscribers on every credential change", func() {
		calls := 0
		unsubscribe := manager.Subscribe(func() { calls++ })

		Expect(manager.SetToken("abc")).To(Succeed())
		Expect(manager.ClearSession()).To(Succeed())
		manager.Recheck()
		Expect(calls).To(Equal(3))

		unsubscribe()
		Expect(manager.SetToken("def")).To(Succeed())
		Expect(calls).To(Equal(3))
	})
})

var _ = Describe("FileTokenStore", func() {
	var (
		dir   string
		store *session.FileTokenStore
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		store = session.NewFileTokenStore(filepath.Join(dir, "token"))
	})

	It("should report no token before the first write", func() {
		_, ok := store.Get()
		Expect(ok).To(BeFalse())
	})

	It("should round-trip and then clear", func() {
		Expect(store.Set("abc")).To(Succeed())
		token, ok := store.Get()
		Expect(ok).To(BeTrue())
		Expect(token).To(Equal("abc"))

		Expect(store.Clear()).To(Succeed())
		_, ok = store.Get()
		Expect(ok).To(BeFalse())
	})

	It("should trim whitespace written by external tools", func() {
		Expect(os.WriteFile(store.Path(), []byte("abc\n"), 0o600)).To(Succeed())
		token, ok := store.Get()
		Expect(ok).To(BeTrue())
		Expect(token).To(Equal("abc"))
	})
})

var _ = Describe("Watch", func() {
	It("should notify when the token file changes externally", func() {
		dir := GinkgoT().TempDir()
		store := session.NewFileTokenStore(filepath.Join(dir, "token"))
		manager := session.NewManager(store, testLogger())

		notified := make(chan struct{}, 8)
		manager.Subscribe(func() { notified <- struct{}{} })

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			_ = manager.Watch(ctx, store)
		}()

		// give the watcher a beat to register
		time.Sleep(100 * time.Millisecond)
		Expect(os.WriteFile(store.Path(), []byte("external"), 0o600)).To(Succeed())

		Eventually(notified).WithTimeout(2 * time.Second).Should(Receive())
	})
})
