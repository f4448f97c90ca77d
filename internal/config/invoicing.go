package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InvoicingConfig carries presentation settings for generated invoices:
// the currency code amounts are labelled with and the seller identity
// printed on exported documents.
type InvoicingConfig struct {
	Currency      string `mapstructure:"currency"`
	SellerName    string `mapstructure:"sellerName"`
	SellerAddress string `mapstructure:"sellerAddress"`
	SellerEmail   string `mapstructure:"sellerEmail"`
}

func DefaultInvoicingConfig() InvoicingConfig {
	return InvoicingConfig{
		Currency:   "EUR",
		SellerName: "Faktur",
	}
}

// InvoicingConfigHolder holds the current invoicing config and swaps it
// atomically when the backing file changes.
type InvoicingConfigHolder struct {
	current atomic.Value // holds InvoicingConfig
}

func NewInvoicingConfigHolder() (*InvoicingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("invoicing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/faktur/config") // Volume-mounted config
	v.AddConfigPath("/etc/faktur")            // System config
	v.AddConfigPath(".")                      // Current directory (dev mode)

	v.SetEnvPrefix("FAKTUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultInvoicingConfig()
		v.SetDefault("invoicing.currency", defaults.Currency)
		v.SetDefault("invoicing.sellerName", defaults.SellerName)
	}

	var cfg InvoicingConfig
	if err := v.UnmarshalKey("invoicing", &cfg); err != nil {
		return nil, err
	}
	if err := validateInvoicingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &InvoicingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InvoicingConfig
		if err := v.UnmarshalKey("invoicing", &updated); err != nil {
			log.Printf("[invoicing-config] reload failed: %v", err)
			return
		}
		if err := validateInvoicingConfig(updated); err != nil {
			log.Printf("[invoicing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[invoicing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *InvoicingConfigHolder) Get() InvoicingConfig {
	return h.current.Load().(InvoicingConfig)
}

// NewStaticInvoicingConfigHolder returns a holder pinned to cfg, without a
// file watcher. Used by tests.
func NewStaticInvoicingConfigHolder(cfg InvoicingConfig) *InvoicingConfigHolder {
	holder := &InvoicingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func validateInvoicingConfig(cfg InvoicingConfig) error {
	if strings.TrimSpace(cfg.Currency) == "" {
		return errors.New("invoicing.currency cannot be empty")
	}
	return nil
}
