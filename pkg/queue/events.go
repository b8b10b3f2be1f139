package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishWasteRecorded 发布 et.waste.recorded 事件。
// 用于采集记录写入数据库后，通知下游流程（报表、积分等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishWasteRecorded(pub message.Publisher, payload WasteRecordedPayload, opts ...HeaderOption) error {
	msg, err := NewWatermillMessage(TopicWasteRecorded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicWasteRecorded, msg)
}

// ParseWasteRecorded 将 Watermill 消息解析为强类型 Envelope（WasteRecordedPayload）。
func ParseWasteRecorded(msg *message.Message) (Message[WasteRecordedPayload], error) {
	return ParseWatermillMessage[WasteRecordedPayload](msg)
}

// PublishAuditMissing 发布 et.waste.audit.missing 事件，由一致性巡检任务触发。
func PublishAuditMissing(pub message.Publisher, payload AuditMissingPayload, opts ...HeaderOption) error {
	msg, err := NewWatermillMessage(TopicAuditMissing, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicAuditMissing, msg)
}

// ParseAuditMissing 将 Watermill 消息解析为强类型 Envelope（AuditMissingPayload）。
func ParseAuditMissing(msg *message.Message) (Message[AuditMissingPayload], error) {
	return ParseWatermillMessage[AuditMissingPayload](msg)
}
