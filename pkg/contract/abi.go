// Package contract contains the go-ethereum binding for the FavorExchange contract
package contract // import "github.com/favorexchange/favor-billboard/pkg/contract"

//go:generate go run ../../cmd/eventsgen/main.go -package contract -out events_gen.go

// FavorExchangeContractName is the name of the contract used in logs and codegen
const FavorExchangeContractName = "FavorExchange"

// FavorExchangeABI is the input ABI used to bind the contract
const FavorExchangeABI = `[
{"constant":true,"inputs":[],"name":"favorGetListHeadId","outputs":[{"name":"","type":"bytes32"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"favor_id","type":"bytes32"}],"name":"favorGetInfo","outputs":[{"name":"","type":"bytes32"},{"name":"","type":"bytes32"},{"name":"","type":"address"},{"name":"","type":"address"},{"name":"","type":"uint256"},{"name":"","type":"bytes32"},{"name":"","type":"bytes32"},{"name":"","type":"bytes32"},{"name":"","type":"uint8"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"favor_id","type":"bytes32"}],"name":"favorGetFlags","outputs":[{"name":"","type":"bool"},{"name":"","type":"bool"},{"name":"","type":"bool"},{"name":"","type":"bool"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"user_addr","type":"address"}],"name":"userGetInfo","outputs":[{"name":"","type":"uint256"},{"name":"","type":"bool"},{"name":"","type":"bytes32"},{"name":"","type":"bytes32"},{"name":"","type":"bytes32"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"cost","type":"uint256"},{"name":"title","type":"bytes32"},{"name":"location","type":"bytes32"},{"name":"description","type":"bytes32"},{"name":"category","type":"uint8"}],"name":"favorRequestCreate","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"cost","type":"uint256"},{"name":"title","type":"bytes32"},{"name":"location","type":"bytes32"},{"name":"description","type":"bytes32"},{"name":"category","type":"uint8"}],"name":"favorOfferCreate","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"favor_id","type":"bytes32"}],"name":"favorRequestAccept","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"favor_id","type":"bytes32"}],"name":"favorOfferAccept","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"favor_id","type":"bytes32"}],"name":"favorVoteCancel","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"favor_id","type":"bytes32"}],"name":"favorVoteDone","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"name","type":"bytes32"},{"name":"public_key","type":"bytes32"},{"name":"contact_info","type":"bytes32"}],"name":"userSetInfo","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[],"name":"demoBuyToken","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"user_addr","type":"address"},{"indexed":false,"name":"new_balance","type":"uint256"}],"name":"BalanceChanged","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"favor_id","type":"bytes32"}],"name":"FavorCreated","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"favor_id","type":"bytes32"},{"indexed":false,"name":"user_addr","type":"address"}],"name":"FavorMatched","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"favor_id","type":"bytes32"},{"indexed":false,"name":"user_addr","type":"address"}],"name":"FavorVoteCancel","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"favor_id","type":"bytes32"}],"name":"FavorCancel","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"favor_id","type":"bytes32"},{"indexed":false,"name":"user_addr","type":"address"}],"name":"FavorVoteDone","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"favor_id","type":"bytes32"}],"name":"FavorDone","type":"event"}
]`
