// Package kafka publishes order status change events to a Kafka topic.
//
// The publisher implements ports.StatusObserver so downstream systems can
// react to status transitions without coupling to the ordering core.
package kafka
