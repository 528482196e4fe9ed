package config

import (
	"fmt"
	"os"
	"reflect"
)

// applyEnvOverrides replaces string fields tagged `env:"NAME"` with the value
// of NAME when that variable is set. Nested structs are walked recursively.
func applyEnvOverrides(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", s)
	}
	val = val.Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		name := typ.Field(i).Tag.Get("env")

		switch {
		case field.Kind() == reflect.Struct:
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
		case name == "":
		case field.Kind() != reflect.String:
			return fmt.Errorf("env var %s: field %s is %s, only strings are supported", name, typ.Field(i).Name, field.Kind())
		default:
			if v, ok := os.LookupEnv(name); ok {
				field.SetString(v)
			}
		}
	}

	return nil
}
