package command

import "respd/resp"

func parseGet(args []resp.Frame) (Command, error) {
	if len(args) != 1 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: Get, key: key}, nil
}

func parseSet(args []resp.Frame) (Command, error) {
	if len(args) != 2 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: Set, key: key, value: args[1]}, nil
}

func parseHGet(args []resp.Frame) (Command, error) {
	if len(args) != 2 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	field, ok := bulkKey(args[1])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: HGet, key: key, field: field}, nil
}

func parseHSet(args []resp.Frame) (Command, error) {
	if len(args) != 3 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	field, ok := bulkKey(args[1])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: HSet, key: key, field: field, value: args[2]}, nil
}

func parseHGetAll(args []resp.Frame) (Command, error) {
	if len(args) != 1 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: HGetAll, key: key}, nil
}

func parseHMGet(args []resp.Frame) (Command, error) {
	if len(args) < 2 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	fields := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		field, ok := bulkKey(a)
		if !ok {
			return Command{}, ErrInvalidArgument
		}
		fields = append(fields, field)
	}
	return Command{name: HMGet, key: key, fields: fields}, nil
}

func parseSAdd(args []resp.Frame) (Command, error) {
	if len(args) < 2 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	members := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		member, ok := bulkKey(a)
		if !ok {
			return Command{}, ErrInvalidArgument
		}
		members = append(members, member)
	}
	return Command{name: SAdd, key: key, members: members}, nil
}

func parseSIsMember(args []resp.Frame) (Command, error) {
	if len(args) != 2 {
		return Command{}, ErrInvalidArgument
	}
	key, ok := bulkKey(args[0])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	member, ok := bulkKey(args[1])
	if !ok {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: SIsMember, key: key, member: member}, nil
}

func parseEcho(args []resp.Frame) (Command, error) {
	if len(args) != 1 {
		return Command{}, ErrInvalidArgument
	}
	if args[0].Kind() != resp.KindBulkString {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: Echo, message: args[0]}, nil
}

func parsePing(args []resp.Frame) (Command, error) {
	if len(args) != 0 {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: Ping}, nil
}

func parseDBSize(args []resp.Frame) (Command, error) {
	if len(args) != 0 {
		return Command{}, ErrInvalidArgument
	}
	return Command{name: DBSize}, nil
}
