package customer

import "strings"

// SortField enumerates the columns the listing may be ordered by. The mapping
// to SQL identifiers is total and closed over these constants: ORDER BY cannot
// be parameterized like values can, so nothing outside this enum may ever
// reach the query text.
type SortField int

const (
	SortByID SortField = iota
	SortByFirstName
	SortByLastName
	SortByPhoneNumber
	SortByAddressesCount
)

// ParseSortField maps an untrusted sortField parameter onto the enum.
// Unknown values fall back to SortByID rather than erroring.
func ParseSortField(s string) SortField {
	switch s {
	case "first_name":
		return SortByFirstName
	case "last_name":
		return SortByLastName
	case "phone_number":
		return SortByPhoneNumber
	case "addresses_count":
		return SortByAddressesCount
	default:
		return SortByID
	}
}

// Column returns the SQL identifier for the field. addresses_count refers to
// the aggregate alias; the rest are qualified customer columns.
func (f SortField) Column() string {
	switch f {
	case SortByFirstName:
		return "c.first_name"
	case SortByLastName:
		return "c.last_name"
	case SortByPhoneNumber:
		return "c.phone_number"
	case SortByAddressesCount:
		return "addresses_count"
	default:
		return "c.id"
	}
}

// SortOrder is the listing direction.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// ParseSortOrder normalizes an untrusted sortOrder parameter. Only a
// case-insensitive "desc" selects descending; everything else is ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, "desc") {
		return SortDesc
	}
	return SortAsc
}

// Direction returns the SQL keyword for the order.
func (o SortOrder) Direction() string {
	if o == SortDesc {
		return "DESC"
	}
	return "ASC"
}
