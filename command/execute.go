package command

import (
	"respd/resp"
	"respd/store"
)

// Execute runs c against st and returns the response frame. Execution is
// infallible: missing keys produce Null, empty sets produce 0, and so on.
// All failure happens earlier, in Parse.
func (c Command) Execute(st store.Store) resp.Frame {
	switch c.name {
	case Get:
		if v, ok := st.Get(c.key); ok {
			return v
		}
		return resp.Null()

	case Set:
		st.Set(c.key, c.value)
		return resp.SimpleString("OK")

	case HGet:
		if v, ok := st.HGet(c.key, c.field); ok {
			return v
		}
		return resp.Null()

	case HSet:
		st.HSet(c.key, c.field, c.value)
		return resp.SimpleString("OK")

	case HGetAll:
		fields, ok := st.HGetAll(c.key)
		if !ok {
			return resp.Array(nil)
		}
		items := make([]resp.Frame, 0, len(fields)*2)
		for field, value := range fields {
			items = append(items, resp.BulkStringFromString(field), value)
		}
		return resp.Array(items)

	case HMGet:
		fields, _ := st.HGetAll(c.key)
		items := make([]resp.Frame, len(c.fields))
		for i, field := range c.fields {
			if v, ok := fields[field]; ok {
				items[i] = v
			} else {
				items[i] = resp.Null()
			}
		}
		return resp.Array(items)

	case SAdd:
		return resp.Integer(st.SAdd(c.key, c.members))

	case SIsMember:
		if st.SIsMember(c.key, c.member) {
			return resp.Integer(1)
		}
		return resp.Integer(0)

	case Echo:
		return c.message

	case Ping:
		return resp.SimpleString("PONG")

	case DBSize:
		return resp.Integer(st.KeyCount())

	case Unrecognized:
		fallthrough
	default:
		return resp.SimpleString("OK")
	}
}
