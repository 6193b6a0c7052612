package repo

import (
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"FinKeeper/internal/model"
)

// Служебные поля не попадают в дифф: время жизни строки ведёт сам
// репозиторий, а deleted_at аудируется операциями корзины отдельно.
var auditSkipFields = map[string]struct{}{
	"ID":        {},
	"CreatedAt": {},
	"UpdatedAt": {},
	"DeletedAt": {},
}

// FieldDiff сравнивает две версии одной сущности по значению и возвращает
// упорядоченный список изменившихся полей. Порядок — порядок объявления
// полей в структуре, он стабилен между запусками.
func FieldDiff(oldV, newV any) model.FieldChanges {
	ov := reflect.Indirect(reflect.ValueOf(oldV))
	nv := reflect.Indirect(reflect.ValueOf(newV))
	if !ov.IsValid() || !nv.IsValid() || ov.Kind() != reflect.Struct || ov.Type() != nv.Type() {
		return nil
	}

	t := ov.Type()
	var changes model.FieldChanges
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if _, skip := auditSkipFields[f.Name]; skip {
			continue
		}
		a := ov.Field(i).Interface()
		b := nv.Field(i).Interface()
		if valuesEqual(a, b) {
			continue
		}
		changes = append(changes, model.FieldChange{
			Field: fieldName(f),
			Old:   exportValue(a),
			New:   exportValue(b),
		})
	}
	return changes
}

// valuesEqual — сравнение по значению, а не по представлению:
// decimal "1.50" и "1.5" равны, времена сравниваются через time.Equal.
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case decimal.Decimal:
		return av.Equal(b.(decimal.Decimal))
	case time.Time:
		return av.Equal(b.(time.Time))
	case *time.Time:
		bv := b.(*time.Time)
		if av == nil || bv == nil {
			return av == bv
		}
		return av.Equal(*bv)
	}
	return reflect.DeepEqual(a, b)
}

// exportValue приводит значение к JSON-дружелюбному виду для колонки changes.
func exportValue(v any) any {
	switch tv := v.(type) {
	case decimal.Decimal:
		return tv.String()
	case time.Time:
		return tv.UTC().Format(time.RFC3339)
	case *time.Time:
		if tv == nil {
			return nil
		}
		return tv.UTC().Format(time.RFC3339)
	case *string:
		if tv == nil {
			return nil
		}
		return *tv
	case *int64:
		if tv == nil {
			return nil
		}
		return *tv
	}
	return v
}

// fieldName берёт имя поля из json-тега, чтобы дифф совпадал с тем,
// что видит клиент API.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return f.Name
	}
	return tag
}
