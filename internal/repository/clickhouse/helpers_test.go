package clickhouse

import "errors"

var (
	errPrepare = errors.New("prepare failed")
	errAppend  = errors.New("append failed")
	errSend    = errors.New("send failed")
	errQuery   = errors.New("query failed")
	errScan    = errors.New("scan failed")
)
