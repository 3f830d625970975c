package services

import (
	"sort"
	"strings"
)

// apiRelationships maps an ESP-IDF component name to terms commonly
// used alongside it in documentation.
var apiRelationships = map[string][]string{
	"wifi":      {"esp_wifi", "wireless", "ap", "sta", "station", "network"},
	"bluetooth": {"ble", "bt", "classic", "gatt", "gap"},
	"gpio":      {"pin", "digital", "input", "output", "interrupt"},
	"uart":      {"serial", "communication", "usart", "console"},
	"spi":       {"serial", "peripheral", "interface", "master", "slave"},
	"i2c":       {"iic", "two-wire", "twi", "master", "slave"},
	"timer":     {"countdown", "alarm", "interrupt", "hardware"},
	"adc":       {"analog", "digital", "converter", "voltage"},
	"dac":       {"digital", "analog", "converter", "output"},
	"pwm":       {"pulse", "width", "modulation", "signal"},
	"nvs":       {"storage", "flash", "partition", "key-value"},
	"spiffs":    {"filesystem", "flash", "storage"},
	"fatfs":     {"filesystem", "fat", "storage", "sdcard"},
	"freertos":  {"rtos", "task", "scheduler", "queue", "semaphore"},
	"esp32":     {"esp-32", "espressif", "chip", "mcu"},
	"http":      {"client", "server", "request", "response", "web"},
	"mqtt":      {"message", "broker", "publish", "subscribe"},
	"json":      {"parse", "generate", "data", "format"},
	"ota":       {"update", "firmware", "upgrade", "download"},
	"security":  {"encryption", "tls", "ssl", "crypto", "hash"},
}

// relatedTerms collects every component name and synonym related to the
// lowercased query. A component contributes when the query mentions
// either the component itself or any of its synonyms. The result is
// sorted for deterministic scoring and output.
func relatedTerms(queryLower string) []string {
	set := make(map[string]struct{})
	for key, terms := range apiRelationships {
		hit := strings.Contains(queryLower, key)
		if !hit {
			for _, term := range terms {
				if strings.Contains(queryLower, term) {
					hit = true
					break
				}
			}
		}
		if hit {
			set[key] = struct{}{}
			for _, term := range terms {
				set[term] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
