// Package command implements the polymorphic command model: parsing a
// decoded RESP array into a closed set of typed commands, each carrying
// exactly the arguments its arity demands, and executing that command
// against a store.Store.
package command

import (
	"errors"
	"strings"

	"respd/resp"
)

// Name identifies which command a parsed Command holds. It is a closed
// enum, matching the reference proxy's Command uint32 dispatch tag but
// sized down to the commands this server recognizes.
type Name uint8

const (
	Unrecognized Name = iota
	Get
	Set
	HGet
	HSet
	HGetAll
	HMGet
	SAdd
	SIsMember
	Echo
	Ping
	DBSize
)

func (n Name) String() string {
	switch n {
	case Get:
		return "GET"
	case Set:
		return "SET"
	case HGet:
		return "HGET"
	case HSet:
		return "HSET"
	case HGetAll:
		return "HGETALL"
	case HMGet:
		return "HMGET"
	case SAdd:
		return "SADD"
	case SIsMember:
		return "SISMEMBER"
	case Echo:
		return "ECHO"
	case Ping:
		return "PING"
	case DBSize:
		return "DBSIZE"
	default:
		return "UNRECOGNIZED"
	}
}

// Family buckets a Name into the coarse category internal/metrics counts
// requests by.
func (n Name) Family() string {
	switch n {
	case Get, Set, Echo:
		return "string"
	case HGet, HSet, HGetAll, HMGet:
		return "hash"
	case SAdd, SIsMember:
		return "set"
	default:
		return "other"
	}
}

// Command is a tagged variant over every recognized command, holding
// exactly the arguments that Name's arity requires. Execute dispatches on
// Name via an exhaustive switch, never a virtual call.
type Command struct {
	name    Name
	key     string
	field   string
	member  string
	fields  []string
	members []string
	value   resp.Frame
	message resp.Frame
}

// Name reports which command this is.
func (c Command) Name() Name { return c.name }

// ErrInvalidCommand means the input frame was not an Array, or its first
// element was not a BulkString command name.
var ErrInvalidCommand = errors.New("command: invalid command frame")

// ErrInvalidArgument means the command name was recognized but its
// arguments did not match the expected arity or argument types.
var ErrInvalidArgument = errors.New("command: invalid argument")

// Parse turns a decoded Array frame into a Command. Any other frame shape,
// a non-BulkString command name, or an arity/type mismatch fails
// pre-execution: no command raises once Execute starts.
func Parse(f resp.Frame) (Command, error) {
	if f.Kind() != resp.KindArray {
		return Command{}, ErrInvalidCommand
	}
	items := f.Items()
	if len(items) == 0 {
		return Command{}, ErrInvalidCommand
	}
	if items[0].Kind() != resp.KindBulkString {
		return Command{}, ErrInvalidCommand
	}
	name, ok := resp.ValidUTF8String(items[0].Bulk())
	if !ok {
		return Command{}, ErrInvalidCommand
	}
	args := items[1:]

	switch strings.ToLower(name) {
	case "get":
		return parseGet(args)
	case "set":
		return parseSet(args)
	case "hget":
		return parseHGet(args)
	case "hset":
		return parseHSet(args)
	case "hgetall":
		return parseHGetAll(args)
	case "hmget":
		return parseHMGet(args)
	case "sadd":
		return parseSAdd(args)
	case "sismember":
		return parseSIsMember(args)
	case "echo":
		return parseEcho(args)
	case "ping":
		return parsePing(args)
	case "dbsize":
		return parseDBSize(args)
	default:
		return Command{name: Unrecognized}, nil
	}
}

func bulkKey(f resp.Frame) (string, bool) {
	if f.Kind() != resp.KindBulkString {
		return "", false
	}
	return resp.ValidUTF8String(f.Bulk())
}
