package common

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var knownDrivers = map[string]bool{"": true, "sqlite": true, "memory": true, "postgres": true, "mysql": true, "sqlserver": true}

func ValidateAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return err
	}
	return nil
}

// ValidateCatalogConfig checks the keys catalogctl and the service rely on.
// strict additionally requires an explicit database DSN.
func ValidateCatalogConfig(v *viper.Viper, strict bool) error {
	var errs []error
	host := v.GetString("host")
	if host == "" {
		host = "0.0.0.0"
	}
	port := v.GetInt("port")
	if port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("port: %d out of range", port))
	} else if err := ValidateAddr(net.JoinHostPort(host, strconv.Itoa(port))); err != nil {
		errs = append(errs, fmt.Errorf("host: %w", err))
	}

	driver, dsn := Database(v)
	if !knownDrivers[strings.ToLower(driver)] {
		errs = append(errs, fmt.Errorf("database.driver: unsupported %q", driver))
	}
	if strict && dsn == "" && driver != "memory" {
		errs = append(errs, fmt.Errorf("database.dsn missing"))
	}

	switch t := strings.ToLower(v.GetString("events.type")); t {
	case "", "noop", "memory":
	case "redis":
		if u := v.GetString("events.redisurl"); strict && u == "" {
			errs = append(errs, fmt.Errorf("events.redisurl missing"))
		}
	case "kafka":
		brokers := v.GetStringSlice("events.brokers")
		if len(brokers) == 0 {
			errs = append(errs, fmt.Errorf("events.brokers missing"))
		}
		for _, b := range brokers {
			if err := ValidateAddr(b); err != nil {
				errs = append(errs, fmt.Errorf("events.brokers %s: %w", b, err))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("events.type: unsupported %q", t))
	}

	if v.GetBool("otel.enabletracing") || v.GetBool("otel.enablemetrics") {
		if v.GetString("otel.collectorurl") == "" {
			errs = append(errs, fmt.Errorf("otel.collectorurl missing"))
		}
	}
	return errors.Join(errs...)
}
