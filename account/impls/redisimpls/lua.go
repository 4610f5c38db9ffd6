package redisimpls

import "github.com/go-redis/redis/v8"

const (
	errIDExists    = "id exists"
	errEmailExists = "email exists"
	errIDNotExists = "id not exists"
)

var (
	addAccountScript = redis.NewScript(`
		local idKey =  KEYS[1]
		local emailKey = KEYS[2]
		local createAtKey = KEYS[3]

		local vId = ARGV[1]
		local vData = ARGV[2]
		local vBalance = ARGV[3]
		local vCreateAt = ARGV[4]

		local ret = redis.call("GET", emailKey)
		if ret ~= false then
			return redis.error_reply("email exists")
		end

		local exists = redis.call('EXISTS', idKey)

		if exists == 1 then
			return redis.error_reply("id exists")
		end

		redis.call("HSET", idKey, "data", vData, "balance", vBalance, "create_at", vCreateAt)
		redis.call("SET", emailKey, vId)
		redis.call("ZADD", createAtKey, vCreateAt, vId)

		return 0
	`)

	setBalanceScript = redis.NewScript(`
		local idKey =  KEYS[1]

		local vBalance = ARGV[1]

		local exists = redis.call('EXISTS', idKey)

		if exists == 0 then
			return redis.error_reply("id not exists")
		end

		redis.call("HSET", idKey, "balance", vBalance)

		return 0
	`)
)
