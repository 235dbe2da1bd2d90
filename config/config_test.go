package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/enemy-behavior/config"
)

var _ = Describe("Config", func() {
	var (
		tempDir    string
		originalWD string
	)

	writeConfig := func(dir, content string) {
		err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		originalWD, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Chdir(tempDir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(originalWD)).To(Succeed())
		os.RemoveAll(tempDir)
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("LOGGING_LEVEL")
	})

	Describe("Load", func() {
		Context("without a config file", func() {
			It("should use the default cast", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal(config.EnvDev))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelInfo))
				Expect(cfg.Cast).To(Equal([]config.ActorConfig{
					{Name: "Goblin", Initial: "aggressive", Next: "defensive"},
					{Name: "Golem", Initial: "defensive", Next: "passive"},
					{Name: "Elf", Initial: "passive", Next: "aggressive"},
				}))
			})

			It("should apply environment overrides", func() {
				os.Setenv("ENVIRONMENT", "prod")
				os.Setenv("LOGGING_LEVEL", "debug")

				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal(config.EnvProd))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelDebug))
			})

			It("should reject an invalid environment override", func() {
				os.Setenv("LOGGING_LEVEL", "verbose")

				cfg, err := config.Load()
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})
		})

		Context("with valid config file", func() {
			BeforeEach(func() {
				writeConfig(tempDir, `
environment: "staging"

logging:
  level: "warn"
  add_source: true

cast:
  - name: "Troll"
    initial: "defensive"
    next: "aggressive"
`)
			})

			It("should load configuration successfully", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal(config.EnvStaging))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelWarn))
				Expect(cfg.Logging.AddSource).To(BeTrue())
			})

			It("should replace the default cast", func() {
				cfg, _ := config.Load()
				Expect(cfg.Cast).To(Equal([]config.ActorConfig{
					{Name: "Troll", Initial: "defensive", Next: "aggressive"},
				}))
			})
		})

		Context("with config file in ./config", func() {
			It("should find it", func() {
				dir := filepath.Join(tempDir, "config")
				Expect(os.Mkdir(dir, 0755)).To(Succeed())
				writeConfig(dir, "logging:\n  level: error\n")

				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelError))
				Expect(cfg.Cast).To(HaveLen(3))
			})
		})

		Context("with malformed config file", func() {
			It("should return the parse error", func() {
				writeConfig(tempDir, "cast: [unterminated\n")

				cfg, err := config.Load()
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})
		})

		Context("with an unknown behavior", func() {
			It("should fail validation", func() {
				writeConfig(tempDir, `
cast:
  - name: "Imp"
    initial: "berserk"
    next: "passive"
`)
				cfg, err := config.Load()
				Expect(err).To(MatchError(ContainSubstring("must be one of aggressive, defensive, passive")))
				Expect(cfg).To(BeNil())
			})
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = &config.Config{
				Environment: config.EnvDev,
				Logging:     config.LoggingConfig{Level: config.LogLevelInfo},
				Cast:        []config.ActorConfig{{Name: "Goblin", Initial: "aggressive", Next: "defensive"}},
			}
		})

		It("should accept a complete config", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should accept behaviors in any case", func() {
			cfg.Cast[0].Initial = "Aggressive"
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject an empty cast", func() {
			cfg.Cast = nil
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("Cast")))
		})

		It("should reject an actor without a name", func() {
			cfg.Cast[0].Name = ""
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("Name")))
		})

		It("should reject an actor without a next behavior", func() {
			cfg.Cast[0].Next = ""
			Expect(cfg.Validate()).To(HaveOccurred())
		})

		It("should reject an unknown environment", func() {
			cfg.Environment = "qa"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("Environment")))
		})
	})
})
