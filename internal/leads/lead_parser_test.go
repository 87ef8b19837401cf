package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseText(t *testing.T) {
	input := "Alice, alice@corp.com, 555-0100\n" +
		"Bob, bob@corp.com\n" +
		", nameless@corp.com, 555-0101\n" +
		"\n" +
		"Carol"

	rows := ParseText(input)
	assert.Len(t, rows, 3)

	assert.Equal(t, ParsedLead{Name: "Alice", Email: "alice@corp.com", Phone: "555-0100"}, rows[0])
	assert.Equal(t, ParsedLead{Name: "Bob", Email: "bob@corp.com"}, rows[1])
	assert.Equal(t, ParsedLead{Name: "Carol"}, rows[2])
}

func TestMatchColumnsFuzzyHeaders(t *testing.T) {
	name, email, phone := matchColumns([]string{"Full Name", "E-Mail Address", "Contact No"})
	assert.Equal(t, 0, name)
	assert.Equal(t, 1, email)
	assert.Equal(t, 2, phone)

	name, email, phone = matchColumns([]string{"Mobile", "Customer Name"})
	assert.Equal(t, 1, name)
	assert.Equal(t, -1, email)
	assert.Equal(t, 0, phone)

	name, _, _ = matchColumns([]string{"id", "amount"})
	assert.Equal(t, -1, name)
}
