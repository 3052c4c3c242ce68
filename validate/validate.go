// Package validate holds the value grammars the bar can enforce before a
// token is materialized. Malformed values are normal input here: verdicts
// come back as Results, never as errors.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	nt "filterbar/entity"
)

// Result is a validation verdict. Message is set when invalid; Normalized
// carries the canonical form when the grammar defines one.
type Result struct {
	Valid      bool
	Message    string
	Normalized string
}

// CIDR widths narrower than /22 are disallowed as a product rule, not an
// address-validity rule.
const (
	minCidr = 22
	maxCidr = 32
)

const (
	minPort = 1
	maxPort = 65535
)

// Ip validates a dotted-quad address with an optional CIDR width. A bare
// address normalizes to /32; an address with a width is its own canonical
// form.
func Ip(text string) Result {

	trimmed := strings.TrimSpace(text)

	addr, width, hasWidth := strings.Cut(trimmed, "/")

	octets := strings.Split(addr, ".")
	if len(octets) != 4 {
		return Result{Message: "must be an IP address like 10.1.2.3 or a CIDR range like 10.1.2.0/24"}
	}

	for _, octet := range octets {
		num, err := strconv.Atoi(octet)
		if err != nil || num < 0 || num > 255 {
			return Result{Message: "each octet must be between 0 and 255"}
		}
	}

	if !hasWidth {
		return Result{Valid: true, Normalized: trimmed + "/32"}
	}

	num, err := strconv.Atoi(width)
	if err != nil || num < minCidr || num > maxCidr {
		return Result{Message: fmt.Sprintf("CIDR range must be between %d and %d", minCidr, maxCidr)}
	}

	return Result{Valid: true, Normalized: trimmed}
}

// Port validates a single port, a strictly increasing port range, or a
// comma-separated port list. Validity alone is the contract; no
// normalized form is produced.
func Port(text string) Result {

	trimmed := strings.TrimSpace(text)

	if num, err := strconv.Atoi(trimmed); err == nil {
		if num < minPort || num > maxPort {
			return Result{Message: fmt.Sprintf("port must be between %d and %d", minPort, maxPort)}
		}
		return Result{Valid: true}
	}

	if res, isRange := portRange(trimmed); isRange {
		return res
	}

	if strings.Contains(trimmed, ",") {
		for _, entry := range strings.Split(trimmed, ",") {
			entry = strings.TrimSpace(entry)
			num, err := strconv.Atoi(entry)
			if err != nil || num < minPort || num > maxPort {
				return Result{Message: fmt.Sprintf("%q is not a valid port", entry)}
			}
		}
		return Result{Valid: true}
	}

	return Result{Message: "must be a port, a range like 440-450, or a comma-separated list"}
}

// portRange reports whether text has the start-end shape, and if so
// whether the bounds are in range and strictly increasing.
func portRange(text string) (res Result, isRange bool) {

	start, end, found := strings.Cut(text, "-")
	if !found {
		return
	}

	lo, errLo := strconv.Atoi(strings.TrimSpace(start))
	hi, errHi := strconv.Atoi(strings.TrimSpace(end))
	if errLo != nil || errHi != nil {
		return
	}

	isRange = true
	switch {
	case lo < minPort || lo > maxPort || hi < minPort || hi > maxPort:
		res = Result{Message: fmt.Sprintf("ports must be between %d and %d", minPort, maxPort)}
	case lo >= hi:
		res = Result{Message: "range start must be less than end"}
	default:
		res = Result{Valid: true}
	}

	return
}

// TokenValue dispatches to the grammar named by the property's validation
// tag. Unrecognized tags pass, so a permissive configuration is never
// blocked by a tag this package does not know.
func TokenValue(value string, prop nt.Property) Result {

	switch prop.Validation {
	case "ip", "ipAddress":
		return Ip(value)
	case "port", "portNumber":
		return Port(value)
	}

	return Result{Valid: true}
}
