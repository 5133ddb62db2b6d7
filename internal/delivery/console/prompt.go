package console

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The prompt helpers implement the blocking read-with-validation pattern
// shared by every numeric field: re-prompt until the line parses and
// satisfies the predicate. Only a failed input stream breaks the loop.

// promptPositiveDecimal re-prompts until the line parses as a positive
// decimal amount.
func (c *Console) promptPositiveDecimal(prompt, invalidMsg, nonPositiveMsg string) (decimal.Decimal, error) {
	for {
		c.print(prompt)

		value, ok, err := c.readDecimal()
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			c.println(invalidMsg)

			continue
		}
		if !value.IsPositive() {
			c.println(nonPositiveMsg)

			continue
		}

		return value, nil
	}
}

// promptPositiveInt re-prompts until the line parses as a positive integer.
func (c *Console) promptPositiveInt(prompt, invalidMsg, nonPositiveMsg string) (int, error) {
	for {
		c.print(prompt)

		value, ok, err := c.readInt()
		if err != nil {
			return 0, err
		}
		if !ok {
			c.println(invalidMsg)

			continue
		}
		if value <= 0 {
			c.println(nonPositiveMsg)

			continue
		}

		return value, nil
	}
}

// readDecimal reads one line and reports whether it parsed as a decimal.
func (c *Console) readDecimal() (decimal.Decimal, bool, error) {
	line, err := c.readLine()
	if err != nil {
		return decimal.Zero, false, err
	}

	value, parseErr := decimal.NewFromString(strings.TrimSpace(line))
	if parseErr != nil {
		return decimal.Zero, false, nil
	}

	return value, true, nil
}

// readInt reads one line and reports whether it parsed as an integer.
func (c *Console) readInt() (int, bool, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, false, err
	}

	value, parseErr := strconv.Atoi(strings.TrimSpace(line))
	if parseErr != nil {
		return 0, false, nil
	}

	return value, true, nil
}
