package wmi

import (
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// SWbemServices.ExecQuery flags. Forward-only result sets cannot be counted
// or indexed, only enumerated, which is all the query layer needs.
const (
	wbemFlagReturnImmediately = 0x10
	wbemFlagForwardOnly       = 0x20
)

// QuerySpec names a single property of a CIM class to fetch. Index selects
// which instance QueryOne extracts when the class enumerates more than one.
type QuerySpec struct {
	Class    string
	Property string
	Index    int
}

func (q QuerySpec) wql() string {
	return "SELECT " + q.Property + " FROM " + q.Class
}

// QueryOne executes the query and returns the property value of the
// instance at spec.Index. Missing data never faults: a failed query, an
// index outside the enumeration (negative included), a non-string value, or
// an absent property all yield "". Only a session that is not active is an
// error.
func (s *Session) QueryOne(spec QuerySpec) (string, error) {
	if s.state != stateActive {
		return "", ErrNotInitialized
	}
	if spec.Index < 0 {
		return "", nil
	}

	rows, err := s.execQuery(spec.wql())
	if err != nil {
		return "", nil
	}
	defer rows.Close()

	var row *ole.IDispatch
	for i := 0; i <= spec.Index; i++ {
		if row != nil {
			row.Release()
			row = nil
		}
		next, err := rows.Next()
		if err != nil || next == nil {
			return "", nil
		}
		row = next
	}
	defer row.Release()

	return stringProperty(row, spec.Property), nil
}

// QueryMany executes the query and collects every non-empty string value of
// the property, in enumeration order. Rows with a missing property, a
// non-string value, or an empty value are skipped.
func (s *Session) QueryMany(spec QuerySpec) ([]string, error) {
	if s.state != stateActive {
		return nil, ErrNotInitialized
	}

	rows, err := s.execQuery(spec.wql())
	if err != nil {
		return nil, nil
	}
	defer rows.Close()

	var values []string
	for {
		row, err := rows.Next()
		if err != nil || row == nil {
			break
		}
		if v := stringProperty(row, spec.Property); v != "" {
			values = append(values, v)
		}
		row.Release()
	}
	return values, nil
}

// execQuery runs a WQL statement and wraps the forward-only result set in a
// rowCursor owning the enumerator.
func (s *Session) execQuery(query string) (*rowCursor, error) {
	resultRaw, err := oleutil.CallMethod(s.service, "ExecQuery",
		query, "WQL", wbemFlagReturnImmediately|wbemFlagForwardOnly)
	if err != nil {
		return nil, err
	}
	result := resultRaw.ToIDispatch()

	enumRaw, err := result.GetProperty("_NewEnum")
	if err != nil {
		result.Release()
		return nil, err
	}
	enum, err := enumRaw.ToIUnknown().IEnumVARIANT(ole.IID_IEnumVariant)
	enumRaw.Clear()
	if err != nil {
		result.Release()
		return nil, err
	}
	return &rowCursor{result: result, enum: enum}, nil
}

// rowCursor is a non-restartable walk over a query's result rows. The
// result set and enumerator are released by Close, each returned row by its
// caller.
type rowCursor struct {
	result *ole.IDispatch
	enum   *ole.IEnumVARIANT
}

// Next returns the next row, or nil when the enumeration is exhausted. The
// caller releases the returned row.
func (c *rowCursor) Next() (*ole.IDispatch, error) {
	item, length, err := c.enum.Next(1)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	return item.ToIDispatch(), nil
}

func (c *rowCursor) Close() {
	if c.enum != nil {
		c.enum.Release()
		c.enum = nil
	}
	if c.result != nil {
		c.result.Release()
		c.result = nil
	}
}

// stringProperty reads the named property off a row, treating anything that
// is not a string variant as absent.
func stringProperty(row *ole.IDispatch, name string) string {
	prop, err := oleutil.GetProperty(row, name)
	if err != nil {
		return ""
	}
	defer prop.Clear()

	if prop.VT != ole.VT_BSTR {
		return ""
	}
	return bstrToUTF8(*(**uint16)(unsafe.Pointer(&prop.Val)))
}
