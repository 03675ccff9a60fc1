// Package auth implements the credential core of recruitd: bcrypt password
// hashing and verification, and issuance/parsing of signed session tokens.
//
// Tokens are stateless HS256 JWTs carrying the subject id and role captured
// at issuance time. There is no server-side session store and no revocation:
// a token stays valid until its expiry, and a role change only takes effect
// for tokens issued afterwards.
package auth
