package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// TelegramUserPrefix marks history records created from the bot.
const TelegramUserPrefix = "telegram:"
