package tagged

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
)

// Value implements driver.Valuer by converting the payload alone. Payloads
// that are themselves driver.Valuer (uuid.UUID, for one) are converted
// through their own Value method; everything else goes through the driver's
// default parameter conversion, exactly as the bare payload would.
func (v Value[Tag, Payload]) Value() (driver.Value, error) {
	return driver.DefaultParameterConverter.ConvertValue(v.payload)
}

// Scan implements sql.Scanner by decoding a payload value from the column
// and wrapping it. Payloads implementing sql.Scanner decode through their
// own Scan method and surface their own errors unchanged.
func (v *Value[Tag, Payload]) Scan(src any) error {
	if scanner, ok := any(&v.payload).(sql.Scanner); ok {
		return scanner.Scan(src)
	}

	return convertAssign(&v.payload, src)
}

// convertAssign covers the payload types without their own sql.Scanner,
// mirroring the conversions database/sql applies for plain destination
// types: direct assignment, string/[]byte interchange, and widening-safe
// numeric conversions.
func convertAssign[Payload any](dest *Payload, src any) error {
	if src == nil {
		var zero Payload
		*dest = zero

		return nil
	}

	destValue := reflect.ValueOf(dest).Elem()
	srcValue := reflect.ValueOf(src)

	if srcValue.Type().AssignableTo(destValue.Type()) {
		destValue.Set(srcValue)
		return nil
	}

	if bytes, ok := src.([]byte); ok && destValue.Kind() == reflect.String {
		destValue.SetString(string(bytes))
		return nil
	}

	if text, ok := src.(string); ok && destValue.Kind() == reflect.Slice && destValue.Type().Elem().Kind() == reflect.Uint8 {
		destValue.SetBytes([]byte(text))
		return nil
	}

	if srcValue.Type().ConvertibleTo(destValue.Type()) {
		converted := srcValue.Convert(destValue.Type())

		switch destValue.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if srcValue.Kind() == reflect.Int64 && destValue.OverflowInt(srcValue.Int()) {
				return fmt.Errorf("converting driver.Value %v (%T) overflows %s", src, src, destValue.Type())
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if srcValue.Kind() == reflect.Int64 {
				if srcValue.Int() < 0 || destValue.OverflowUint(uint64(srcValue.Int())) {
					return fmt.Errorf("converting driver.Value %v (%T) overflows %s", src, src, destValue.Type())
				}
			}
		default:
		}

		destValue.Set(converted)

		return nil
	}

	return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", src, dest)
}
